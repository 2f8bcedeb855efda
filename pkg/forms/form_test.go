package forms_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formkit/pkg/forms"
	"github.com/goliatone/go-formkit/pkg/testsupport"
)

type account struct {
	Username string
	Password string
	Assigned []string
	Message  string
	Servers  map[string]string
}

func sampleAccount() account {
	return account{
		Username: "mrfoo",
		Password: "super-secret-password",
		Assigned: []string{"bacon", "steak"},
		Message:  "Hello, textarea!",
		Servers:  map[string]string{"webrick": "WEBrick", "mongrel": "Mongrel", "thin": "Thin"},
	}
}

func build(t *testing.T, data any, fn func(*forms.Form), opts ...forms.Option) string {
	t.Helper()

	form := forms.New(data, append([]forms.Option{forms.WithMethod("get")}, opts...)...)
	if err := form.Build(nil, fn); err != nil {
		t.Fatalf("build: %v", err)
	}
	return form.String()
}

func TestFormAttributes(t *testing.T) {
	cases := []struct {
		name string
		opts []forms.Option
		want string
	}{
		{
			name: "method only",
			opts: []forms.Option{forms.WithMethod("post")},
			want: `<form method="post"></form>`,
		},
		{
			name: "method action and name",
			opts: []forms.Option{forms.WithMethod("post"), forms.WithAction("/"), forms.WithName("spec")},
			want: `<form method="post" action="/" name="spec"></form>`,
		},
		{
			name: "class and id",
			opts: []forms.Option{forms.WithAttr("class", "foo"), forms.WithAttr("id", "bar")},
			want: `<form class="foo" id="bar"></form>`,
		},
		{
			name: "no attributes",
			want: `<form></form>`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := forms.New(sampleAccount(), tc.opts...)
			if err := form.Build(nil, nil); err != nil {
				t.Fatalf("build: %v", err)
			}
			if diff := cmp.Diff(tc.want, form.String()); diff != "" {
				t.Fatalf("form mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTextFieldUsesDataObject(t *testing.T) {
	got := build(t, sampleAccount(), func(f *forms.Form) {
		f.Text("Username", "username")
	})

	want := `<form method="get"><p><label for="form_username">Username</label>` +
		`<input type="text" name="username" id="form_username" value="mrfoo" /></p></form>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("text field mismatch (-want +got):\n%s", diff)
	}
}

func TestExplicitValueWinsOverDataObject(t *testing.T) {
	got := build(t, sampleAccount(), func(f *forms.Form) {
		f.Text("Username", "username", forms.Value("mrboo"), forms.Attr("size", "10"), forms.ID("my_id"))
	})

	want := `<form method="get"><p><label for="my_id">Username</label>` +
		`<input size="10" type="text" name="username" id="my_id" value="mrboo" /></p></form>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("text field mismatch (-want +got):\n%s", diff)
	}
}

func TestNilDataRendersWithoutValue(t *testing.T) {
	got := build(t, nil, func(f *forms.Form) {
		f.Password("Password", "password")
	})

	want := `<form method="get"><p><label for="form_password">Password</label>` +
		`<input type="password" name="password" id="form_password" /></p></form>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("password field mismatch (-want +got):\n%s", diff)
	}
}

func TestFormNamePrefixesIDs(t *testing.T) {
	got := build(t, nil, func(f *forms.Form) {
		f.Email("Email", "Primary-Email")
	}, forms.WithName("Signup"))

	if !strings.Contains(got, `for="signup_primary_email"`) || !strings.Contains(got, `id="signup_primary_email"`) {
		t.Fatalf("expected id derived from the form name, got %q", got)
	}
	if !strings.Contains(got, `name="Primary-Email"`) {
		t.Fatalf("expected the field name to be kept verbatim, got %q", got)
	}
}

func TestArrangements(t *testing.T) {
	cases := []struct {
		arrangement string
		want        string
	}{
		{
			arrangement: "paragraph",
			want: `<form method="get"><p><label for="form_username">Username</label>` +
				`<input type="text" name="username" id="form_username" value="mrfoo" /></p></form>`,
		},
		{
			arrangement: "table",
			want: `<form method="get"><table><tr><th><label for="form_username">Username</label></th>` +
				`<td><input type="text" name="username" id="form_username" value="mrfoo" /></td></tr></table></form>`,
		},
		{
			arrangement: "none",
			want: `<form method="get"><label for="form_username">Username</label>` +
				`<input type="text" name="username" id="form_username" value="mrfoo" /></form>`,
		},
		{
			arrangement: "bogus",
			want: `<form method="get"><p><label for="form_username">Username</label>` +
				`<input type="text" name="username" id="form_username" value="mrfoo" /></p></form>`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.arrangement, func(t *testing.T) {
			got := build(t, sampleAccount(), func(f *forms.Form) {
				f.Text("Username", "username")
			}, forms.WithArrangement(tc.arrangement))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("arrangement mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseArrangement(t *testing.T) {
	cases := map[string]forms.Arrangement{
		"":          forms.ArrangementParagraph,
		"Table":     forms.ArrangementTable,
		" none ":    forms.ArrangementNone,
		"paragraph": forms.ArrangementParagraph,
		"grid":      forms.ArrangementParagraph,
	}
	for in, want := range cases {
		if got := forms.ParseArrangement(in); got != want {
			t.Fatalf("ParseArrangement(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestErrorIsDisplayedOnce(t *testing.T) {
	form := forms.New(sampleAccount(), forms.WithMethod("post"))
	errs := forms.ErrorMap{"username": "is taken", "password": "is too short"}

	err := form.Build(errs, func(f *forms.Form) {
		f.Text("Username", "username")
		f.Text("Username again", "username")
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	out := form.String()
	if got := strings.Count(out, `<span class="error">&nbsp;is taken</span>`); got != 1 {
		t.Fatalf("expected one error annotation, got %d in %q", got, out)
	}
	if diff := cmp.Diff(forms.ErrorMap{"password": "is too short"}, form.PendingErrors()); diff != "" {
		t.Fatalf("pending errors mismatch (-want +got):\n%s", diff)
	}

	if err := form.Build(nil, func(f *forms.Form) { f.Text("Username", "username") }); err != nil {
		t.Fatalf("second build: %v", err)
	}
	if got := strings.Count(form.String(), "is taken"); got != 1 {
		t.Fatalf("expected consumed error not to reappear, got %d occurrences", got)
	}
}

func TestErrorMessagesAreEscaped(t *testing.T) {
	form := forms.New(nil)
	_ = form.Build(forms.ErrorMap{"bio": `<script>alert("x")</script>`}, func(f *forms.Form) {
		f.Textarea("Bio", "bio")
	})

	out := form.String()
	if strings.Contains(out, "<script>") {
		t.Fatalf("raw error message leaked: %q", out)
	}
	if !strings.Contains(out, "&nbsp;&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;") {
		t.Fatalf("expected escaped error message, got %q", out)
	}
}

func TestMissingNameIsRecorded(t *testing.T) {
	form := forms.New(nil)
	err := form.Build(nil, func(f *forms.Form) {
		f.Text("Name", "")
		f.Checkbox("Flags", "")
	})
	if !errors.Is(err, forms.ErrMissingName) {
		t.Fatalf("expected ErrMissingName, got %v", err)
	}
	if !errors.Is(form.Err(), forms.ErrMissingName) {
		t.Fatalf("expected Err to keep the first error, got %v", form.Err())
	}
	if got := form.String(); got != "<form></form>" {
		t.Fatalf("expected nothing emitted for an unnamed field, got %q", got)
	}
}

func TestUnsupportedControl(t *testing.T) {
	form := forms.New(nil)
	var fieldErr error
	buildErr := form.Build(nil, func(f *forms.Form) {
		fieldErr = f.Field(forms.Kind("week"), "when", "When")
	})
	if !errors.Is(fieldErr, forms.ErrUnsupportedControl) {
		t.Fatalf("expected ErrUnsupportedControl from Field, got %v", fieldErr)
	}
	if !errors.Is(buildErr, forms.ErrUnsupportedControl) {
		t.Fatalf("expected Build to surface the field error, got %v", buildErr)
	}
	if !strings.Contains(fieldErr.Error(), `"week"`) {
		t.Fatalf("expected error to name the type, got %q", fieldErr.Error())
	}
}

func TestStringBeforeBuildIsEmpty(t *testing.T) {
	form := forms.New(sampleAccount())
	if form.String() != "" || form.PrettyString() != "" {
		t.Fatalf("expected empty output before build")
	}
}

func TestFieldsetAndLegend(t *testing.T) {
	got := build(t, nil, func(f *forms.Form) {
		f.Fieldset(func(f *forms.Form) {
			f.Legend("The Form")
		})
		f.G().Tag("div", "custom", map[string]string{"class": "awesome"})
	})

	want := `<form method="get"><fieldset><legend>The Form</legend></fieldset><div class="awesome">custom</div></form>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("fieldset mismatch (-want +got):\n%s", diff)
	}
}

func TestPrettyTableGolden(t *testing.T) {
	form := forms.New(nil, forms.WithMethod("post"), forms.WithAction("/login"), forms.WithArrangement("table"))
	err := form.Build(forms.ErrorMap{"username": "is required"}, func(f *forms.Form) {
		f.Text("Username", "username")
		f.Password("Password", "password")
		f.Hidden("next", forms.Value("/home"))
		f.Submit("Login")
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	path := "testdata/login_table.golden"
	output := form.PrettyString()
	if testsupport.WriteMaybeGolden(t, path, []byte(output)) {
		return
	}
	want := testsupport.MustReadGoldenString(t, path)
	if diff := testsupport.CompareGolden(want, output); diff != "" {
		t.Fatalf("pretty output mismatch (-want +got):\n%s", diff)
	}
}

type member struct {
	name string
}

func (m member) Username() string { return m.name }

func TestNilPointerDataRendersEmptyControls(t *testing.T) {
	var data *member
	form := forms.New(data, forms.WithMethod("post"))
	err := form.Build(nil, func(f *forms.Form) {
		f.Text("Username", "username")
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	want := `<form method="post"><p><label for="form_username">Username</label>` +
		`<input type="text" name="username" id="form_username" /></p></form>`
	if diff := cmp.Diff(want, form.String()); diff != "" {
		t.Fatalf("form mismatch (-want +got):\n%s", diff)
	}

	if _, err := forms.FormFor(forms.NewErrors(nil), data, func(f *forms.Form) {
		f.Text("Username", "username")
	}); err != nil {
		t.Fatalf("form for: %v", err)
	}
}
