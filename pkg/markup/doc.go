// Package markup builds HTML/XML fragments through a small tag DSL. Callers
// issue Tag calls against a Builder, nesting children through callbacks that
// receive the same Builder, and render the collected fragments either compactly
// (String) or indented for snapshots and debugging (PrettyString).
//
//	html := markup.Build(func(b *markup.Builder) {
//		b.Tag("h1", "Hello, World!")
//		b.P(func(b *markup.Builder) {
//			b.Tag("a", "home", markup.A("href", "/"))
//		})
//	})
//
// Attribute values and text content are entity-escaped before they reach the
// buffer. Append is the only way to write raw markup; AppendSafe does the same
// after filtering the fragment through a bluemonday policy.
package markup
