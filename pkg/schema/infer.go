package schema

import (
	"github.com/goliatone/go-formkit/pkg/schema/typedesc"
)

var typeHeads = map[string]LogicalType{
	"int":       TypeInteger,
	"integer":   TypeInteger,
	"smallint":  TypeInteger,
	"mediumint": TypeInteger,
	"bigint":    TypeInteger,
	"serial":    TypeInteger,
	"bigserial": TypeInteger,
	"int2":      TypeInteger,
	"int4":      TypeInteger,
	"int8":      TypeInteger,

	"varchar":   TypeString,
	"char":      TypeString,
	"character": TypeString,
	"nvarchar":  TypeString,
	"nchar":     TypeString,
	"string":    TypeString,
	"citext":    TypeString,
	"uuid":      TypeString,
	"enum":      TypeString,
	"set":       TypeString,

	"text":       TypeString,
	"tinytext":   TypeString,
	"mediumtext": TypeString,
	"longtext":   TypeString,
	"clob":       TypeString,

	"blob":       TypeBlob,
	"tinyblob":   TypeBlob,
	"mediumblob": TypeBlob,
	"longblob":   TypeBlob,
	"bytea":      TypeBlob,
	"binary":     TypeBlob,
	"varbinary":  TypeBlob,

	"float":  TypeFloat,
	"double": TypeFloat,
	"real":   TypeFloat,

	"decimal": TypeDecimal,
	"numeric": TypeDecimal,
	"money":   TypeDecimal,

	"date":        TypeDate,
	"datetime":    TypeDatetime,
	"timestamp":   TypeDatetime,
	"timestamptz": TypeDatetime,
	"time":        TypeTime,

	"bool":    TypeBoolean,
	"boolean": TypeBoolean,
	"bit":     TypeBoolean,
}

// textTypes are the string types rendered as multi-line text.
var textTypes = map[string]bool{
	"text":       true,
	"tinytext":   true,
	"mediumtext": true,
	"longtext":   true,
	"clob":       true,
}

// InferType maps a declared SQL type to its logical type. "tinyint(1)" is
// treated as a boolean, other tinyints as integers. Unparseable or unknown
// declarations yield TypeUnknown.
func InferType(dbType string) LogicalType {
	desc, err := typedesc.Parse(dbType)
	if err != nil {
		return TypeUnknown
	}
	head := desc.Head()
	if head == "tinyint" {
		if size, _ := desc.Size(); size == 1 {
			return TypeBoolean
		}
		return TypeInteger
	}
	return typeHeads[head]
}

// IsText reports whether dbType declares an unbounded text column.
func IsText(dbType string) bool {
	desc, err := typedesc.Parse(dbType)
	if err != nil {
		return false
	}
	return textTypes[desc.Head()]
}
