package schema

import (
	"fmt"
	"strings"
)

// ArgType is the declared type of a function parameter.
type ArgType string

const (
	TypeAny          ArgType = "ANY"
	TypeBoolean      ArgType = "BOOLEAN"
	TypeDate         ArgType = "DATE"
	TypeNumber       ArgType = "NUMBER"
	TypeString       ArgType = "STRING"
	TypeRange        ArgType = "RANGE"
	TypeRangeAny     ArgType = "RANGE<ANY>"
	TypeRangeBoolean ArgType = "RANGE<BOOLEAN>"
	TypeRangeDate    ArgType = "RANGE<DATE>"
	TypeRangeNumber  ArgType = "RANGE<NUMBER>"
	TypeRangeString  ArgType = "RANGE<STRING>"
	// TypeMeta marks a parameter that receives a reference rather than its value.
	TypeMeta ArgType = "META"
)

var knownTypes = map[ArgType]struct{}{
	TypeAny: {}, TypeBoolean: {}, TypeDate: {}, TypeNumber: {}, TypeString: {},
	TypeRange: {}, TypeRangeAny: {}, TypeRangeBoolean: {}, TypeRangeDate: {},
	TypeRangeNumber: {}, TypeRangeString: {}, TypeMeta: {},
}

// Name returns the human-readable name of the type.
func (t ArgType) Name() string { return string(t) }

// IsRange reports whether the type is one of the RANGE types.
func (t ArgType) IsRange() bool { return strings.HasPrefix(string(t), string(TypeRange)) }

// ParseType converts a type name to an ArgType. Names are case-insensitive:
// "number", "Range<Number>" and "RANGE<NUMBER>" are equivalent.
func ParseType(typeStr string) (ArgType, error) {
	t := ArgType(strings.ToUpper(strings.ReplaceAll(typeStr, " ", "")))
	if _, ok := knownTypes[t]; !ok {
		return "", fmt.Errorf("unsupported type: %s", typeStr)
	}
	return t, nil
}
