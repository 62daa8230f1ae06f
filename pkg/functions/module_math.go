package functions

import (
	"math"

	"github.com/aretw0/cellfn/pkg/pipeline"
	"github.com/aretw0/cellfn/pkg/value"
)

var mathModule = Module{
	Category: "Math",
	Functions: map[string]pipeline.Compute{
		"ABS":     abs,
		"DIVIDE":  divide,
		"PRODUCT": product,
		"ROUND":   round,
		"SUM":     sum,
	},
}

func abs(_ pipeline.EvalContext, args []value.Arg) (value.Result, error) {
	f, err := toNumber(args[0].Payload())
	if err != nil {
		return value.Result{}, err
	}
	return value.ScalarResult(math.Abs(f)), nil
}

func divide(_ pipeline.EvalContext, args []value.Arg) (value.Result, error) {
	dividend, err := toNumber(args[0].Payload())
	if err != nil {
		return value.Result{}, err
	}
	divisor, err := toNumber(args[1].Payload())
	if err != nil {
		return value.Result{}, err
	}
	if divisor == 0 {
		return value.Result{}, value.NewDivisionByZeroError("The divisor must be different from zero.")
	}
	return value.ScalarResult(dividend / divisor), nil
}

func product(_ pipeline.EvalContext, args []value.Arg) (value.Result, error) {
	acc, count := 1.0, 0
	err := visitNumbers(args, func(f float64) {
		acc *= f
		count++
	})
	if err != nil {
		return value.Result{}, err
	}
	if count == 0 {
		return value.ScalarResult(0.0), nil
	}
	return value.ScalarResult(acc), nil
}

// round rounds half away from zero. Negative places round to the left of the
// decimal point.
func round(_ pipeline.EvalContext, args []value.Arg) (value.Result, error) {
	f, err := toNumber(args[0].Payload())
	if err != nil {
		return value.Result{}, err
	}
	places, err := numberOr(args, 1, 0)
	if err != nil {
		return value.Result{}, err
	}
	places = math.Trunc(places)
	if places < 0 {
		scale := math.Pow(10, -places)
		return value.ScalarResult(math.Round(f/scale) * scale), nil
	}
	scale := math.Pow(10, places)
	return value.ScalarResult(math.Round(f*scale) / scale), nil
}

func sum(_ pipeline.EvalContext, args []value.Arg) (value.Result, error) {
	total := 0.0
	if err := visitNumbers(args, func(f float64) { total += f }); err != nil {
		return value.Result{}, err
	}
	return value.ScalarResult(total), nil
}
