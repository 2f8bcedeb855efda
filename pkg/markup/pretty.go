package markup

import "strings"

const prettyIndent = "  "

// PrettyString renders the buffer one tag or text run per line, indenting
// children under their parent. It regroups the raw fragments heuristically
// (a fragment starting with "<" opens a run, one ending in ">" closes it), so
// it is meant for snapshots and debugging, not for round-tripping arbitrary
// HTML spliced in through Append.
func (b *Builder) PrettyString() string {
	var (
		parts   []string
		current strings.Builder
	)
	flush := func() {
		if current.Len() > 0 {
			parts = append(parts, current.String())
			current.Reset()
		}
	}

	for _, fragment := range b.out {
		switch {
		case strings.HasPrefix(fragment, "<"):
			flush()
			current.WriteString(fragment)
			if strings.HasSuffix(fragment, ">") {
				flush()
			}
		case strings.HasSuffix(fragment, ">"):
			current.WriteString(fragment)
			flush()
		default:
			current.WriteString(fragment)
		}
	}
	flush()

	var (
		out    strings.Builder
		indent int
	)
	for _, part := range parts {
		if strings.HasPrefix(part, "</") && indent > 0 {
			indent--
		}
		out.WriteString(strings.Repeat(prettyIndent, indent))
		out.WriteString(part)
		out.WriteByte('\n')

		switch {
		case !strings.HasPrefix(part, "<"):
		case strings.HasSuffix(part, "/>"):
		case strings.HasPrefix(part, "</"):
		default:
			indent++
		}
	}
	return out.String()
}
