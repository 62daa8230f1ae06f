package value

import (
	"fmt"
	"strconv"
)

// CellValue is the content of a single cell: nil (empty), float64, string or bool.
type CellValue = any

// Payload is the uniform result carrier produced by every function call.
type Payload struct {
	Value   CellValue `json:"value"`
	Format  string    `json:"format,omitempty"`
	Message string    `json:"message,omitempty"`
}

// Of wraps a raw cell value into a payload.
func Of(v CellValue) Payload {
	return Payload{Value: v}
}

// IsError reports whether the payload carries a recognized evaluation error.
func (p Payload) IsError() bool {
	_, ok := p.ErrorKind()
	return ok
}

// ErrorKind returns the error discriminant held in Value, if any.
func (p Payload) ErrorKind() (ErrorKind, bool) {
	s, ok := p.Value.(string)
	if !ok || !IsEvaluationError(s) {
		return "", false
	}
	return ErrorKind(s), true
}

// IsEmpty reports whether the payload holds no value.
func (p Payload) IsEmpty() bool {
	return p.Value == nil
}

// String renders the value the way a cell would display it.
func (p Payload) String() string {
	switch v := p.Value.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "TRUE"
		}
		return "FALSE"
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
