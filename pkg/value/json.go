package value

import (
	"encoding/json"
	"fmt"
)

// ArgFromJSON converts a value decoded by encoding/json into an argument.
//
//   - null is an omitted argument
//   - numbers, strings and booleans are single cells
//   - {"value": ..., "format": ..., "message": ...} is a payload
//   - an array of arrays is a range given column by column
//   - a flat array is a range holding a single column
func ArgFromJSON(v any) (Arg, error) {
	switch x := v.(type) {
	case nil:
		return MissingArg(), nil
	case []any:
		g, err := gridFromJSON(x)
		if err != nil {
			return Arg{}, err
		}
		return RangeArg(g), nil
	default:
		p, err := payloadFromJSON(v)
		if err != nil {
			return Arg{}, err
		}
		return ScalarArg(p), nil
	}
}

// ArgsFromJSON converts every element with ArgFromJSON.
func ArgsFromJSON(values []any) ([]Arg, error) {
	args := make([]Arg, len(values))
	for i, v := range values {
		arg, err := ArgFromJSON(v)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		args[i] = arg
	}
	return args, nil
}

func gridFromJSON(values []any) (Grid[Payload], error) {
	if len(values) == 0 {
		return Grid[Payload]{}, nil
	}
	if _, nested := values[0].([]any); !nested {
		col, err := columnFromJSON(values)
		if err != nil {
			return nil, err
		}
		return Grid[Payload]{col}, nil
	}
	g := make(Grid[Payload], len(values))
	for i, v := range values {
		cells, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("column %d: expected an array, got %T", i, v)
		}
		col, err := columnFromJSON(cells)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		g[i] = col
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func columnFromJSON(cells []any) ([]Payload, error) {
	col := make([]Payload, len(cells))
	for i, cell := range cells {
		p, err := payloadFromJSON(cell)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		col[i] = p
	}
	return col, nil
}

func payloadFromJSON(v any) (Payload, error) {
	switch x := v.(type) {
	case nil, float64, string, bool:
		return Of(x), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return Payload{}, fmt.Errorf("invalid number %q: %w", x.String(), err)
		}
		return Of(f), nil
	case int:
		return Of(float64(x)), nil
	case map[string]any:
		raw, ok := x["value"]
		if !ok {
			return Payload{}, fmt.Errorf("cell object without a \"value\" key")
		}
		p, err := payloadFromJSON(raw)
		if err != nil {
			return Payload{}, err
		}
		p.Format, _ = x["format"].(string)
		p.Message, _ = x["message"].(string)
		return p, nil
	default:
		return Payload{}, fmt.Errorf("unsupported cell value of type %T", v)
	}
}
