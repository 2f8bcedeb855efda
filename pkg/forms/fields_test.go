package forms_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formkit/pkg/forms"
	"github.com/goliatone/go-formkit/pkg/markup"
)

func wrap(inner string) string {
	return `<form method="get"><p>` + inner + `</p></form>`
}

func TestChoiceGroups(t *testing.T) {
	bacon := `<input type="checkbox" name="assigned[]" id="form_assigned_0" value="bacon" />`
	steak := `<input type="checkbox" name="assigned[]" id="form_assigned_1" value="steak" />`
	label := `<label for="form_assigned_0">Assigned</label>`

	cases := []struct {
		name string
		fn   func(f *forms.Form)
		want string
	}{
		{
			name: "checkbox values from data object",
			fn:   func(f *forms.Form) { f.Checkbox("Assigned", "assigned") },
			want: wrap(label +
				`<span class="checkbox_wrap">` + bacon + ` bacon</span>` +
				`<span class="checkbox_wrap">` + steak + ` steak</span>`),
		},
		{
			name: "checkbox explicit checked",
			fn:   func(f *forms.Form) { f.Checkbox("Assigned", "assigned", forms.Checked("bacon")) },
			want: wrap(label +
				`<span class="checkbox_wrap"><input type="checkbox" name="assigned[]" id="form_assigned_0" checked="checked" value="bacon" /> bacon</span>` +
				`<span class="checkbox_wrap">` + steak + ` steak</span>`),
		},
		{
			name: "checkbox explicit values and checked list",
			fn: func(f *forms.Form) {
				f.Checkbox("Assigned", "assigned", forms.Values([]string{"boo", "foo"}), forms.Checked([]string{"boo"}))
			},
			want: wrap(label +
				`<span class="checkbox_wrap"><input type="checkbox" name="assigned[]" id="form_assigned_0" checked="checked" value="boo" /> boo</span>` +
				`<span class="checkbox_wrap"><input type="checkbox" name="assigned[]" id="form_assigned_1" value="foo" /> foo</span>`),
		},
		{
			name: "checkbox label to value map",
			fn: func(f *forms.Form) {
				f.Checkbox("Assigned", "assigned", forms.Values(map[string]string{"Steak": "steak", "Bacon": "bacon"}))
			},
			want: wrap(label +
				`<span class="checkbox_wrap"><input type="checkbox" name="assigned[]" id="form_assigned_0" checked="checked" value="bacon" /> Bacon</span>` +
				`<span class="checkbox_wrap"><input type="checkbox" name="assigned[]" id="form_assigned_1" checked="checked" value="steak" /> Steak</span>`),
		},
		{
			name: "checkbox without value text",
			fn:   func(f *forms.Form) { f.Checkbox("Assigned", "assigned", forms.ShowValue(false)) },
			want: wrap(label +
				`<span class="checkbox_wrap">` + bacon + `</span>` +
				`<span class="checkbox_wrap">` + steak + `</span>`),
		},
		{
			name: "checkbox without group label",
			fn:   func(f *forms.Form) { f.Checkbox("Assigned", "assigned", forms.ShowLabel(false)) },
			want: wrap(`<span class="checkbox_wrap">` + bacon + ` bacon</span>` +
				`<span class="checkbox_wrap">` + steak + ` steak</span>`),
		},
		{
			name: "radio uses the bare name",
			fn:   func(f *forms.Form) { f.Radio("Assigned", "assigned", forms.Checked("bacon")) },
			want: wrap(label +
				`<span class="radio_wrap"><input type="radio" name="assigned" id="form_assigned_0" checked="checked" value="bacon" /> bacon</span>` +
				`<span class="radio_wrap"><input type="radio" name="assigned" id="form_assigned_1" value="steak" /> steak</span>`),
		},
		{
			name: "radio with custom span class",
			fn: func(f *forms.Form) {
				f.Radio("Assigned", "assigned", forms.Values(forms.C("Boo", "boo")), forms.SpanClass("pill"))
			},
			want: wrap(label +
				`<span class="pill"><input type="radio" name="assigned" id="form_assigned_0" value="boo" /> Boo</span>`),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := build(t, sampleAccount(), tc.fn)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("choice group mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestChoiceGroupIDsWithoutCheckedValues(t *testing.T) {
	for _, kind := range []forms.Kind{forms.KindCheckbox, forms.KindRadio} {
		form := forms.New(nil)
		err := form.Build(nil, func(f *forms.Form) {
			if err := f.Field(kind, "meal", "Meal", forms.Values([]string{"bacon", "steak"})); err != nil {
				t.Fatalf("field: %v", err)
			}
		})
		if err != nil {
			t.Fatalf("build: %v", err)
		}

		out := form.String()
		wantName := `name="meal"`
		if kind == forms.KindCheckbox {
			wantName = `name="meal[]"`
		}
		for _, fragment := range []string{`id="form_meal_0"`, `id="form_meal_1"`, wantName} {
			if !strings.Contains(out, fragment) {
				t.Fatalf("%s: expected %s in %q", kind, fragment, out)
			}
		}
		if strings.Contains(out, "checked") {
			t.Fatalf("%s: expected no checked controls in %q", kind, out)
		}
	}
}

func TestSelect(t *testing.T) {
	servers := map[string]string{"webrick": "WEBrick", "mongrel": "Mongrel", "thin": "Thin"}
	options := func(selected ...string) string {
		var out strings.Builder
		for _, pair := range [][2]string{{"mongrel", "Mongrel"}, {"thin", "Thin"}, {"webrick", "WEBrick"}} {
			out.WriteString(`<option value="` + pair[0] + `"`)
			for _, s := range selected {
				if s == pair[0] {
					out.WriteString(` selected="selected"`)
				}
			}
			out.WriteString(`>` + pair[1] + `</option>`)
		}
		return out.String()
	}
	label := `<label for="form_servers">Server</label>`

	cases := []struct {
		name string
		fn   func(f *forms.Form)
		want string
	}{
		{
			name: "size defaults to option count",
			fn:   func(f *forms.Form) { f.Select("Server", "engine", forms.Values(servers)) },
			want: wrap(`<label for="form_engine">Server</label><select id="form_engine" size="3" name="engine">` +
				options() + `</select>`),
		},
		{
			name: "values from data object",
			fn:   func(f *forms.Form) { f.Select("Server", "servers", forms.Selected("mongrel")) },
			want: wrap(label + `<select id="form_servers" size="3" name="servers">` + options("mongrel") + `</select>`),
		},
		{
			name: "multiple",
			fn: func(f *forms.Form) {
				f.Select("Server", "servers", forms.Multiple(), forms.Selected([]string{"webrick", "mongrel"}))
			},
			want: wrap(label + `<select id="form_servers" size="3" name="servers[]" multiple="multiple">` +
				options("webrick", "mongrel") + `</select>`),
		},
		{
			name: "dropdown forces a single row",
			fn:   func(f *forms.Form) { f.Dropdown("Server", "servers", forms.Size(5)) },
			want: wrap(label + `<select id="form_servers" size="1" name="servers">` + options() + `</select>`),
		},
		{
			name: "ordered choices keep their order",
			fn: func(f *forms.Form) {
				f.Select("People", "people", forms.Values(forms.C("Chuck", "chuck", "Bob", "bob")), forms.Selected("chuck"))
			},
			want: wrap(`<label for="form_people">People</label><select id="form_people" size="2" name="people">` +
				`<option value="chuck" selected="selected">Chuck</option><option value="bob">Bob</option></select>`),
		},
		{
			name: "no options",
			fn:   func(f *forms.Form) { f.Select("Empty", "empty") },
			want: wrap(`<label for="form_empty">Empty</label><select id="form_empty" size="1" name="empty"></select>`),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := build(t, sampleAccount(), tc.fn)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("select mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTextarea(t *testing.T) {
	got := build(t, sampleAccount(), func(f *forms.Form) {
		f.Textarea("Message", "message")
		f.Textarea("Message", "message", forms.Value("stuff & things"))
	})

	want := `<form method="get">` +
		`<p><label for="form_message">Message</label><textarea name="message" id="form_message">Hello, textarea!</textarea></p>` +
		`<p><label for="form_message">Message</label><textarea name="message" id="form_message">stuff &amp; things</textarea></p>` +
		`</form>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("textarea mismatch (-want +got):\n%s", diff)
	}
}

func TestHiddenFieldsAreNeverWrapped(t *testing.T) {
	for _, arrangement := range []string{"paragraph", "table"} {
		got := build(t, sampleAccount(), func(f *forms.Form) {
			f.Hidden("username")
			f.Hidden("username", forms.Value("Bob Ross"), forms.ID("test"))
		}, forms.WithArrangement(arrangement))

		inner := `<input type="hidden" name="username" value="mrfoo" />` +
			`<input type="hidden" name="username" value="Bob Ross" id="test" />`
		want := `<form method="get">` + inner + `</form>`
		if arrangement == "table" {
			want = `<form method="get"><table>` + inner + `</table></form>`
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("%s: hidden mismatch (-want +got):\n%s", arrangement, diff)
		}
	}
}

func TestButtons(t *testing.T) {
	cases := []struct {
		name string
		fn   func(f *forms.Form)
		want string
	}{
		{"submit", func(f *forms.Form) { f.Submit("") }, wrap(`<input type="submit" />`)},
		{"submit with value", func(f *forms.Form) { f.Submit("Send") }, wrap(`<input type="submit" value="Send" />`)},
		{"reset", func(f *forms.Form) { f.Reset("Reset") }, wrap(`<input type="reset" value="Reset" />`)},
		{
			"button",
			func(f *forms.Form) { f.Button("Accept", forms.Attr("onclick", "fcn()")) },
			wrap(`<input onclick="fcn()" type="button" value="Accept" />`),
		},
		{
			"image",
			func(f *forms.Form) { f.Image("/img/submit.gif", forms.Attr("alt", "Submit")) },
			wrap(`<input src="/img/submit.gif" alt="Submit" type="image" />`),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := build(t, sampleAccount(), tc.fn)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("button mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHTML5Inputs(t *testing.T) {
	cases := []struct {
		name string
		fn   func(f *forms.Form)
		want string
	}{
		{
			"file",
			func(f *forms.Form) { f.File("File", "file", forms.ID("awesome_file")) },
			wrap(`<label for="awesome_file">File</label><input type="file" name="file" id="awesome_file" />`),
		},
		{
			"color",
			func(f *forms.Form) { f.Color("Choose a color", "my_color") },
			wrap(`<label for="form_my_color">Choose a color</label><input type="color" name="my_color" id="form_my_color" />`),
		},
		{
			"number",
			func(f *forms.Form) { f.Number("Age", "age", forms.Attr("min", "1"), forms.Attr("max", "120")) },
			wrap(`<label for="form_age">Age</label><input min="1" max="120" type="number" name="age" id="form_age" />`),
		},
		{
			"range",
			func(f *forms.Form) { f.Range("Cost", "cost", forms.Attrs(markup.A("min", "0", "max", "100"))) },
			wrap(`<label for="form_cost">Cost</label><input min="0" max="100" type="range" name="cost" id="form_cost" />`),
		},
		{
			"url without label",
			func(f *forms.Form) { f.URL("", "url") },
			wrap(`<input type="url" name="url" id="form_url" />`),
		},
		{
			"date with span",
			func(f *forms.Form) { f.Date("Born", "born", forms.Value("2024-02-29"), forms.SpanClass("wrap")) },
			wrap(`<label for="form_born">Born</label><span class="wrap"><input type="date" name="born" id="form_born" value="2024-02-29" /></span>`),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := build(t, sampleAccount(), tc.fn)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("input mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAttributeValuesAreEscaped(t *testing.T) {
	got := build(t, map[string]any{"title": `"Tom" & 'Jerry' <b>`}, func(f *forms.Form) {
		f.Text("Title", "title")
	})
	if !strings.Contains(got, `value="&quot;Tom&quot; &amp; &apos;Jerry&apos; &lt;b&gt;"`) {
		t.Fatalf("expected escaped value, got %q", got)
	}
}
