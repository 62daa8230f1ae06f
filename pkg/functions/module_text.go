package functions

import (
	"strings"
	"unicode/utf8"

	"github.com/aretw0/cellfn/pkg/pipeline"
	"github.com/aretw0/cellfn/pkg/value"
)

var textModule = Module{
	Category: "Text",
	Functions: map[string]pipeline.Compute{
		"CONCAT": concat,
		"LEN":    length,
		"UPPER":  upper,
	},
}

func concat(_ pipeline.EvalContext, args []value.Arg) (value.Result, error) {
	var sb strings.Builder
	for _, arg := range args {
		for _, cell := range arg.Cells() {
			s, err := toString(cell)
			if err != nil {
				return value.Result{}, err
			}
			sb.WriteString(s)
		}
	}
	return value.ScalarResult(sb.String()), nil
}

func length(_ pipeline.EvalContext, args []value.Arg) (value.Result, error) {
	s, err := toString(args[0].Payload())
	if err != nil {
		return value.Result{}, err
	}
	return value.ScalarResult(float64(utf8.RuneCountInString(s))), nil
}

func upper(_ pipeline.EvalContext, args []value.Arg) (value.Result, error) {
	s, err := toString(args[0].Payload())
	if err != nil {
		return value.Result{}, err
	}
	return value.ScalarResult(strings.ToUpper(s)), nil
}
