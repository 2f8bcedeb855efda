package markup

import (
	"io"
	"strings"
)

// TagFunc emits a tag using the same argument rules as Builder.Tag.
type TagFunc func(args ...any)

// Builder collects markup fragments. It is not safe for concurrent use; build
// one per render.
type Builder struct {
	out []string
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// Build runs fn against a fresh Builder and returns the compact markup.
func Build(fn func(*Builder)) string {
	b := New()
	if fn != nil {
		fn(b)
	}
	return b.String()
}

// Tag emits an element named name. A trailing func(*Builder) argument renders
// the element's children. The remaining arguments are read by type:
//
//   - a single attribute map (Attrs, []Attr, map[string]string,
//     map[string]any) sets the attributes;
//   - two arguments where the second is an attribute map are the text content
//     and the attributes;
//   - anything else is text content, with no attributes.
//
// Elements without text or children are self-closing.
func (b *Builder) Tag(name string, args ...any) {
	var children func(*Builder)
	if n := len(args); n > 0 {
		if fn, ok := args[n-1].(func(*Builder)); ok {
			children = fn
			args = args[:n-1]
		}
	}

	var (
		attrs   Attrs
		text    string
		hasText bool
	)
	switch {
	case len(args) == 1 && isAttrs(args[0]):
		attrs, _ = toAttrs(args[0])
	case len(args) == 2 && isAttrs(args[1]):
		attrs, _ = toAttrs(args[1])
		text, hasText = textOf(args[0]), true
	case len(args) > 0:
		parts := make([]string, 0, len(args))
		for _, arg := range args {
			parts = append(parts, textOf(arg))
		}
		text, hasText = strings.Join(parts, ""), true
	}

	b.element(name, attrs, text, hasText, children)
}

func (b *Builder) element(name string, attrs Attrs, text string, hasText bool, children func(*Builder)) {
	b.out = append(b.out, "<"+name, attrs.render())
	if !hasText && children == nil {
		b.out = append(b.out, " />")
		return
	}
	b.out = append(b.out, ">", Escape(text))
	if children != nil {
		children(b)
	}
	b.out = append(b.out, "</"+name+">")
}

func isAttrs(v any) bool {
	_, ok := toAttrs(v)
	return ok
}

// Text appends an escaped text node.
func (b *Builder) Text(s string) {
	b.out = append(b.out, Escape(s))
}

// Append writes raw, already serialized markup into the buffer. Use it to
// splice another builder's output or literal entities such as &nbsp;.
func (b *Builder) Append(raw string) {
	b.out = append(b.out, raw)
}

// Method returns a TagFunc bound to this builder for the named tag. Names in
// the alias table resolve to their explicit methods.
func (b *Builder) Method(name string) TagFunc {
	if alias, ok := aliases[name]; ok {
		return alias(b)
	}
	return func(args ...any) {
		b.Tag(name, args...)
	}
}

// Fragments returns a copy of the buffered fragments.
func (b *Builder) Fragments() []string {
	return append([]string(nil), b.out...)
}

// Len reports the number of buffered fragments.
func (b *Builder) Len() int {
	return len(b.out)
}

// Reset discards the buffered output.
func (b *Builder) Reset() {
	b.out = b.out[:0]
}

// String concatenates the buffer verbatim.
func (b *Builder) String() string {
	return strings.Join(b.out, "")
}

// WriteTo writes the compact markup to w.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
