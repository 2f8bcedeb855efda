package markup

// aliases lists the tag names exposed as explicit Builder methods. Method
// resolves these names to the methods below instead of the generic Tag path.
var aliases = map[string]func(*Builder) TagFunc{
	"p":      func(b *Builder) TagFunc { return b.P },
	"table":  func(b *Builder) TagFunc { return b.Table },
	"tr":     func(b *Builder) TagFunc { return b.Tr },
	"th":     func(b *Builder) TagFunc { return b.Th },
	"td":     func(b *Builder) TagFunc { return b.Td },
	"select": func(b *Builder) TagFunc { return b.Select },
}

// P emits a <p> element.
func (b *Builder) P(args ...any) { b.Tag("p", args...) }

// Table emits a <table> element.
func (b *Builder) Table(args ...any) { b.Tag("table", args...) }

// Tr emits a <tr> element.
func (b *Builder) Tr(args ...any) { b.Tag("tr", args...) }

// Th emits a <th> element.
func (b *Builder) Th(args ...any) { b.Tag("th", args...) }

// Td emits a <td> element.
func (b *Builder) Td(args ...any) { b.Tag("td", args...) }

// Select emits a <select> element.
func (b *Builder) Select(args ...any) { b.Tag("select", args...) }
