package functions

import (
	"github.com/aretw0/cellfn/pkg/pipeline"
	"github.com/aretw0/cellfn/pkg/value"
)

var filterModule = Module{
	Category: "Filter",
	Functions: map[string]pipeline.Compute{
		// Registered as FILTER.ROWS.
		"FILTER_ROWS": filterRows,
	},
}

// filterRows keeps the rows of range whose condition cell is true. The
// condition must be a single column with one cell per row of range.
func filterRows(_ pipeline.EvalContext, args []value.Arg) (value.Result, error) {
	g := args[0].Grid()
	cond := args[1].Grid()

	if cond.NumCols() != 1 || cond.NumRows() != g.NumRows() {
		return value.Result{}, value.NewValueError("[[FUNCTION_NAME]] has mismatched range sizes.")
	}

	var keep []int
	for row, cell := range cond[0] {
		ok, err := toBoolean(cell)
		if err != nil {
			return value.Result{}, err
		}
		if ok {
			keep = append(keep, row)
		}
	}
	if len(keep) == 0 {
		return value.Result{}, value.NewNotAvailableError("No match found in [[FUNCTION_NAME]] evaluation")
	}

	return value.PayloadGridResult(value.NewGrid(g.NumCols(), len(keep), func(col, row int) value.Payload {
		return g[col][keep[row]]
	})), nil
}
