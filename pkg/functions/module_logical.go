package functions

import (
	"github.com/aretw0/cellfn/pkg/pipeline"
	"github.com/aretw0/cellfn/pkg/value"
)

var logicalModule = Module{
	Category: "Logical",
	Functions: map[string]pipeline.Compute{
		"AND": and,
		"IF":  ifFn,
		"NOT": not,
	},
}

func and(_ pipeline.EvalContext, args []value.Arg) (value.Result, error) {
	result, seen := true, false
	err := visitBooleans(args, func(b bool) {
		result = result && b
		seen = true
	})
	if err != nil {
		return value.Result{}, err
	}
	if !seen {
		return value.Result{}, value.NewValueError("[[FUNCTION_NAME]] has no valid input data.")
	}
	return value.ScalarResult(result), nil
}

// ifFn returns the selected branch as a payload so that its format survives.
func ifFn(_ pipeline.EvalContext, args []value.Arg) (value.Result, error) {
	cond, err := toBoolean(args[0].Payload())
	if err != nil {
		return value.Result{}, err
	}
	if cond {
		return value.PayloadResult(args[1].Payload()), nil
	}
	if branch, ok := argAt(args, 2); ok {
		return value.PayloadResult(branch.Payload()), nil
	}
	return value.ScalarResult(false), nil
}

func not(_ pipeline.EvalContext, args []value.Arg) (value.Result, error) {
	b, err := toBoolean(args[0].Payload())
	if err != nil {
		return value.Result{}, err
	}
	return value.ScalarResult(!b), nil
}
