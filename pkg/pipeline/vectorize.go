package pipeline

import (
	"fmt"
	"math"
	"slices"

	"github.com/aretw0/cellfn/pkg/schema"
	"github.com/aretw0/cellfn/pkg/value"
)

const (
	sizeMismatchMessage  = "Array arguments to [[FUNCTION_NAME]] are of different size."
	rangeExpectedMessage = "Function [[FUNCTION_NAME]] expects the parameter '%d' to be reference to a cell or range."
	tooFewArgsMessage    = "Invalid number of arguments for the [[FUNCTION_NAME]] function. Expected at least %d, but got %d instead."
	tooManyArgsMessage   = "Invalid number of arguments for the [[FUNCTION_NAME]] function. Expected %d maximum, but got %d instead."
	raggedRangeMessage   = "Function [[FUNCTION_NAME]] received a range with columns of different lengths as parameter '%d'."
)

type vectorKind uint8

const (
	notVectorized vectorKind = iota
	vectorMatrix
	vectorHorizontal
	vectorVertical
)

// broadcast tracks the output shape (cols x rows) and the overlap every
// classified argument can serve (colLimit x rowLimit).
type broadcast struct {
	cols, rows         int
	colLimit, rowLimit int
}

func newBroadcast() broadcast {
	return broadcast{cols: 1, rows: 1, colLimit: math.MaxInt, rowLimit: math.MaxInt}
}

func (b *broadcast) classify(g value.Grid[value.Payload]) vectorKind {
	cols, rows := g.NumCols(), g.NumRows()
	switch {
	case cols != 1 && rows != 1:
		b.cols, b.rows = max(b.cols, cols), max(b.rows, rows)
		b.colLimit, b.rowLimit = min(b.colLimit, cols), min(b.rowLimit, rows)
		return vectorMatrix
	case cols != 1:
		b.cols = max(b.cols, cols)
		b.colLimit = min(b.colLimit, cols)
		return vectorHorizontal
	default:
		b.rows = max(b.rows, rows)
		b.rowLimit = min(b.rowLimit, rows)
		return vectorVertical
	}
}

func (b *broadcast) inOverlap(col, row int) bool {
	return col < b.colLimit && row < b.rowLimit
}

func withInputHandling(name string, sig schema.Signature, next stage, obs Observer) stage {
	notAvailable := value.NewNotAvailableError(ReplaceFunctionName(sizeMismatchMessage, name)).Payload()

	return func(ctx EvalContext, args []value.Arg) (value.Output, error) {
		if err := checkArity(sig, len(args)); err != nil {
			return value.Output{}, err
		}

		shape := newBroadcast()
		var kinds []vectorKind
		copied := false

		for i, arg := range args {
			spec, _ := sig.SpecAt(i)

			if arg.IsRange() {
				if err := arg.Grid().Validate(); err != nil {
					return value.Output{}, value.NewBadExpressionError(fmt.Sprintf(raggedRangeMessage, i+1))
				}
			}

			if arg.IsRange() && !spec.AcceptMatrix {
				g := arg.Grid()
				if g.IsSingle() {
					if !copied {
						args = slices.Clone(args)
						copied = true
					}
					args[i] = value.ScalarArg(g[0][0])
				} else {
					if kinds == nil {
						kinds = make([]vectorKind, len(args))
					}
					kinds[i] = shape.classify(g)
				}
			}

			// An omitted argument is not a range either.
			if spec.AcceptMatrixOnly && !arg.IsRange() {
				return value.Output{}, value.NewBadExpressionError(fmt.Sprintf(rangeExpectedMessage, i+1))
			}
		}

		if kinds == nil {
			return next(ctx, args)
		}

		out := make(value.Grid[value.Payload], shape.cols)
		for col := range out {
			out[col] = make([]value.Payload, shape.rows)
			for row := range out[col] {
				if !shape.inOverlap(col, row) {
					out[col][row] = notAvailable
					continue
				}
				res, err := next(ctx, cellArgs(args, kinds, col, row))
				if err != nil {
					return value.Output{}, err
				}
				// A grid per-cell result keeps its top-left value only.
				out[col][row] = res.First()
			}
		}
		obs.ObserveBroadcast(name, shape.cols*shape.rows)
		return value.GridOutput(out), nil
	}
}

// cellArgs builds the argument vector for one broadcast cell.
func cellArgs(args []value.Arg, kinds []vectorKind, col, row int) []value.Arg {
	vec := make([]value.Arg, len(args))
	for i, arg := range args {
		switch kinds[i] {
		case vectorMatrix:
			vec[i] = value.ScalarArg(arg.Grid()[col][row])
		case vectorHorizontal:
			vec[i] = value.ScalarArg(arg.Grid()[col][0])
		case vectorVertical:
			vec[i] = value.ScalarArg(arg.Grid()[0][row])
		default:
			vec[i] = arg
		}
	}
	return vec
}

func checkArity(sig schema.Signature, n int) error {
	if sig.Accepts(n) {
		return nil
	}
	if n < sig.MinArgRequired {
		return value.NewBadExpressionError(fmt.Sprintf(tooFewArgsMessage, sig.MinArgRequired, n))
	}
	return value.NewBadExpressionError(fmt.Sprintf(tooManyArgsMessage, sig.MaxArgPossible, n))
}
