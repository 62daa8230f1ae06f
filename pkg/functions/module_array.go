package functions

import (
	"github.com/aretw0/cellfn/pkg/pipeline"
	"github.com/aretw0/cellfn/pkg/value"
)

var arrayModule = Module{
	Category: "Array",
	Functions: map[string]pipeline.Compute{
		"MUNIT":     munit,
		"TRANSPOSE": transpose,
	},
}

func munit(_ pipeline.EvalContext, args []value.Arg) (value.Result, error) {
	f, err := toNumber(args[0].Payload())
	if err != nil {
		return value.Result{}, err
	}
	n := int(f)
	if n < 1 {
		return value.Result{}, value.NewNumberError("The argument dimension must be positive")
	}
	return value.ScalarGridResult(value.NewGrid(n, n, func(col, row int) value.CellValue {
		if col == row {
			return 1.0
		}
		return 0.0
	})), nil
}

func transpose(_ pipeline.EvalContext, args []value.Arg) (value.Result, error) {
	// Rows() of a column-major grid is its transpose, column-major.
	return value.PayloadGridResult(value.Grid[value.Payload](args[0].Grid().Rows())), nil
}
