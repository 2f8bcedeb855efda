package scaffold

import (
	"github.com/goliatone/go-formkit/pkg/schema"
	"github.com/goliatone/go-formkit/pkg/schema/typedesc"
)

// Control is the input a generated form uses for a column.
type Control string

const (
	ControlNumber   Control = "number"
	ControlText     Control = "text"
	ControlTextarea Control = "textarea"
	ControlDate     Control = "date"
	ControlDatetime Control = "datetime"
	ControlTime     Control = "time"
	ControlCheckbox Control = "checkbox"
)

const (
	defaultIntegerWidth = 11
	defaultStringWidth  = 32
	maxStringWidth      = 80
	blobWidth           = 80
	defaultFloatWidth   = 16
	defaultDecimalWidth = 12
	dateWidth           = 10
	datetimeWidth       = 17
	timeWidth           = 8
)

// FieldDescriptor is the display metadata derived from one column.
type FieldDescriptor struct {
	Name    string
	Type    schema.LogicalType
	DBType  string
	Width   int
	Control Control
}

// Describe classifies column. Types it cannot classify become 32 wide text
// inputs.
func Describe(column schema.Column) FieldDescriptor {
	desc := FieldDescriptor{
		Name:   column.Name,
		Type:   column.Type,
		DBType: column.DBType,
	}
	if desc.Type == schema.TypeUnknown {
		desc.Type = schema.InferType(column.DBType)
	}

	size := 0
	if parsed, err := typedesc.Parse(column.DBType); err == nil {
		size, _ = parsed.Size()
	}

	switch desc.Type {
	case schema.TypeInteger:
		desc.Control, desc.Width = ControlNumber, orDefault(size, defaultIntegerWidth)
	case schema.TypeString:
		desc.Control = ControlText
		if schema.IsText(column.DBType) {
			desc.Control = ControlTextarea
		}
		desc.Width = size
		if size <= 0 || size > maxStringWidth {
			desc.Width = defaultStringWidth
		}
	case schema.TypeBlob:
		desc.Control, desc.Width = ControlTextarea, blobWidth
	case schema.TypeFloat:
		desc.Control, desc.Width = ControlText, orDefault(size, defaultFloatWidth)
	case schema.TypeDecimal:
		desc.Control, desc.Width = ControlText, orDefault(size, defaultDecimalWidth)
	case schema.TypeDate:
		desc.Control, desc.Width = ControlDate, dateWidth
	case schema.TypeDatetime:
		desc.Control, desc.Width = ControlDatetime, datetimeWidth
	case schema.TypeTime:
		desc.Control, desc.Width = ControlTime, timeWidth
	case schema.TypeBoolean:
		desc.Control, desc.Width = ControlCheckbox, 0
	default:
		desc.Control, desc.Width = ControlText, defaultStringWidth
	}
	return desc
}

func orDefault(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}
