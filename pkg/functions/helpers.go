package functions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/cellfn/pkg/value"
)

const (
	expectedNumberMessage  = "The function [[FUNCTION_NAME]] expects a number value, but '%s' is a string, and cannot be coerced to a number."
	expectedBooleanMessage = "The function [[FUNCTION_NAME]] expects a boolean value, but '%s' is a text, and cannot be coerced to a boolean."
)

// toNumber coerces a cell to a number. Error payloads are returned as errors so
// that they propagate to the caller.
func toNumber(p value.Payload) (float64, error) {
	if err, ok := value.AsEvaluationError(p); ok {
		return 0, err
	}
	switch v := p.Value.(type) {
	case nil:
		return 0, nil
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, value.NewValueError(fmt.Sprintf(expectedNumberMessage, v))
		}
		return f, nil
	default:
		return 0, value.NewValueError(fmt.Sprintf("Unsupported cell value %v.", v))
	}
}

func toString(p value.Payload) (string, error) {
	if err, ok := value.AsEvaluationError(p); ok {
		return "", err
	}
	return p.String(), nil
}

func toBoolean(p value.Payload) (bool, error) {
	if err, ok := value.AsEvaluationError(p); ok {
		return false, err
	}
	switch v := p.Value.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case float64:
		return v != 0, nil
	case int:
		return v != 0, nil
	case string:
		switch strings.ToUpper(strings.TrimSpace(v)) {
		case "TRUE":
			return true, nil
		case "FALSE", "":
			return false, nil
		}
		return false, value.NewValueError(fmt.Sprintf(expectedBooleanMessage, v))
	default:
		return false, value.NewValueError(fmt.Sprintf("Unsupported cell value %v.", v))
	}
}

// visitNumbers calls fn for every number in args. Scalars are coerced; inside
// ranges, only numeric cells count. The first error payload met is returned.
func visitNumbers(args []value.Arg, fn func(float64)) error {
	for _, arg := range args {
		switch {
		case arg.IsMissing():
		case arg.IsRange():
			for _, cell := range arg.Cells() {
				if err, ok := value.AsEvaluationError(cell); ok {
					return err
				}
				if f, ok := cell.Value.(float64); ok {
					fn(f)
				}
			}
		default:
			f, err := toNumber(arg.Payload())
			if err != nil {
				return err
			}
			fn(f)
		}
	}
	return nil
}

// visitBooleans is visitNumbers for logical values: inside ranges, booleans and
// numbers count, text and empty cells are skipped.
func visitBooleans(args []value.Arg, fn func(bool)) error {
	for _, arg := range args {
		switch {
		case arg.IsMissing():
		case arg.IsRange():
			for _, cell := range arg.Cells() {
				if err, ok := value.AsEvaluationError(cell); ok {
					return err
				}
				switch v := cell.Value.(type) {
				case bool:
					fn(v)
				case float64:
					fn(v != 0)
				}
			}
		default:
			b, err := toBoolean(arg.Payload())
			if err != nil {
				return err
			}
			fn(b)
		}
	}
	return nil
}

// argAt returns the i-th argument unless it is out of range or omitted.
func argAt(args []value.Arg, i int) (value.Arg, bool) {
	if i >= len(args) || args[i].IsMissing() {
		return value.Arg{}, false
	}
	return args[i], true
}

func numberOr(args []value.Arg, i int, fallback float64) (float64, error) {
	arg, ok := argAt(args, i)
	if !ok {
		return fallback, nil
	}
	return toNumber(arg.Payload())
}

func booleanOr(args []value.Arg, i int, fallback bool) (bool, error) {
	arg, ok := argAt(args, i)
	if !ok {
		return fallback, nil
	}
	return toBoolean(arg.Payload())
}
