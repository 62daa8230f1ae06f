package functions

import (
	"github.com/aretw0/cellfn/pkg/pipeline"
	"github.com/aretw0/cellfn/pkg/value"
)

var infoModule = Module{
	Category: "Info",
	Functions: map[string]pipeline.Compute{
		"ISERROR": isError,
	},
}

func isError(_ pipeline.EvalContext, args []value.Arg) (value.Result, error) {
	return value.ScalarResult(args[0].Payload().IsError()), nil
}
