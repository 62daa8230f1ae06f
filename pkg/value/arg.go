package value

type argKind uint8

const (
	argMissing argKind = iota
	argScalar
	argRange
)

// Arg is one call-site argument: omitted, a single payload, or a range.
// The zero value is an omitted argument.
type Arg struct {
	kind    argKind
	payload Payload
	grid    Grid[Payload]
}

// MissingArg returns an omitted argument.
func MissingArg() Arg { return Arg{} }

// ScalarArg wraps a payload.
func ScalarArg(p Payload) Arg { return Arg{kind: argScalar, payload: p} }

// ValueArg wraps a raw cell value.
func ValueArg(v CellValue) Arg { return ScalarArg(Of(v)) }

// RangeArg wraps a grid. A nil grid is kept as an empty range.
func RangeArg(g Grid[Payload]) Arg {
	if g == nil {
		g = Grid[Payload]{}
	}
	return Arg{kind: argRange, grid: g}
}

// IsMissing reports whether the argument was omitted.
func (a Arg) IsMissing() bool { return a.kind == argMissing }

// IsRange reports whether the argument is a grid.
func (a Arg) IsRange() bool { return a.kind == argRange }

// Payload returns the scalar payload. It is the zero payload for ranges and
// omitted arguments.
func (a Arg) Payload() Payload { return a.payload }

// Value is shorthand for Payload().Value.
func (a Arg) Value() CellValue { return a.payload.Value }

// Grid returns the range, or nil when the argument is not a range.
func (a Arg) Grid() Grid[Payload] { return a.grid }

// Cells returns every payload of the argument: the grid cells column by column,
// the scalar alone, or nothing when omitted.
func (a Arg) Cells() []Payload {
	switch a.kind {
	case argScalar:
		return []Payload{a.payload}
	case argRange:
		cells := make([]Payload, 0, a.grid.NumCols()*a.grid.NumRows())
		for _, col := range a.grid {
			cells = append(cells, col...)
		}
		return cells
	default:
		return nil
	}
}

// Args is a convenience for building argument vectors from raw values. Grids of
// payloads become ranges, payloads stay scalars, anything else is wrapped as a
// cell value.
func Args(values ...any) []Arg {
	args := make([]Arg, len(values))
	for i, v := range values {
		switch x := v.(type) {
		case Arg:
			args[i] = x
		case Grid[Payload]:
			args[i] = RangeArg(x)
		case Payload:
			args[i] = ScalarArg(x)
		default:
			args[i] = ValueArg(x)
		}
	}
	return args
}
