package markup

import "strings"

// entities lists the substitutions applied by Escape. Ampersand must stay
// first so the entities produced by later rules are not escaped again.
var entities = []struct {
	char   string
	entity string
}{
	{"&", "&amp;"},
	{`"`, "&quot;"},
	{"'", "&apos;"},
	{"<", "&lt;"},
	{">", "&gt;"},
}

// Escape replaces &, ", ', < and > with their named entities.
func Escape(s string) string {
	for _, e := range entities {
		if strings.Contains(s, e.char) {
			s = strings.ReplaceAll(s, e.char, e.entity)
		}
	}
	return s
}
