// Package typedesc parses declared SQL column types such as "varchar(255)",
// "decimal(10, 2)", "int unsigned" or "timestamp with time zone".
package typedesc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	descLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "Number", Pattern: `[-+]?\d+`},
		{Name: "String", Pattern: `'(?:''|[^'])*'|"(?:""|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
		{Name: "Punct", Pattern: `[(),]`},
	})

	descParser = participle.MustBuild[Descriptor](
		participle.Lexer(descLexer),
		participle.Elide("Whitespace"),
	)
)

// Descriptor is a parsed type declaration: the type name words, the
// parenthesised arguments and any trailing modifiers.
type Descriptor struct {
	Words     []string `parser:"@Ident+"`
	Args      []string `parser:"( '(' ( ( @Number | @String ) ( ',' ( @Number | @String ) )* )? ')' )?"`
	Modifiers []string `parser:"@Ident*"`
}

// Parse parses raw. Empty input is an error.
func Parse(raw string) (*Descriptor, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("typedesc: empty type")
	}
	desc, err := descParser.ParseString("", trimmed)
	if err != nil {
		return nil, fmt.Errorf("typedesc: parse %q: %w", raw, err)
	}
	return desc, nil
}

// Base returns the lowercased type name, words joined by a single space.
func (d *Descriptor) Base() string {
	if d == nil {
		return ""
	}
	return strings.ToLower(strings.Join(d.Words, " "))
}

// Head returns the lowercased first word of the type name.
func (d *Descriptor) Head() string {
	if d == nil || len(d.Words) == 0 {
		return ""
	}
	return strings.ToLower(d.Words[0])
}

// Size returns the first two numeric arguments, zero when absent:
// "decimal(10,2)" gives (10, 2), "varchar(32)" gives (32, 0).
func (d *Descriptor) Size() (int, int) {
	if d == nil {
		return 0, 0
	}
	var sizes [2]int
	n := 0
	for _, arg := range d.Args {
		if n == len(sizes) {
			break
		}
		value, err := strconv.Atoi(arg)
		if err != nil {
			continue
		}
		sizes[n] = value
		n++
	}
	return sizes[0], sizes[1]
}

// HasModifier reports whether the declaration carries modifier, ignoring case.
func (d *Descriptor) HasModifier(modifier string) bool {
	if d == nil {
		return false
	}
	for _, m := range d.Modifiers {
		if strings.EqualFold(m, modifier) {
			return true
		}
	}
	return false
}

// String renders the descriptor in canonical lowercase form.
func (d *Descriptor) String() string {
	if d == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(d.Base())
	if len(d.Args) > 0 {
		b.WriteString("(" + strings.Join(d.Args, ",") + ")")
	}
	for _, m := range d.Modifiers {
		b.WriteString(" " + strings.ToLower(m))
	}
	return b.String()
}
