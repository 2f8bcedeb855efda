package markup_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formkit/pkg/markup"
)

func TestPrettyStringIndentsChildren(t *testing.T) {
	b := markup.New()
	b.Table(markup.A("class", "grid"), func(b *markup.Builder) {
		b.Tr(func(b *markup.Builder) {
			b.Th("Name")
			b.Td(func(b *markup.Builder) {
				b.Tag("input", markup.A("type", "text", "name", "name"))
			})
		})
	})

	want := `<table class="grid">
  <tr>
    <th>
      Name
    </th>
    <td>
      <input type="text" name="name" />
    </td>
  </tr>
</table>
`
	if diff := cmp.Diff(want, b.PrettyString()); diff != "" {
		t.Fatalf("pretty output mismatch (-want +got):\n%s", diff)
	}
}

func TestPrettyStringEmptyBuilder(t *testing.T) {
	if got := markup.New().PrettyString(); got != "" {
		t.Fatalf("expected empty pretty output, got %q", got)
	}
}

func TestPrettyStringNeverIndentsBelowZero(t *testing.T) {
	b := markup.New()
	b.Append("</orphan>")
	b.Tag("br")

	want := "</orphan>\n<br />\n"
	if got := b.PrettyString(); got != want {
		t.Fatalf("unexpected pretty output %q", got)
	}
}
