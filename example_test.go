package cellfn_test

import (
	"fmt"
	"log"

	"github.com/aretw0/cellfn"
	"github.com/aretw0/cellfn/pkg/pipeline"
	"github.com/aretw0/cellfn/pkg/registry"
	"github.com/aretw0/cellfn/pkg/schema"
	"github.com/aretw0/cellfn/pkg/value"
)

func ExampleNew() {
	reg, err := cellfn.New()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(reg.Invoke("ROUND", nil, value.Args(2.5)...).Payload())
	fmt.Println(reg.Invoke("DIVIDE", nil, value.Args(1.0, 0.0)...).Payload().Message)
	// Output:
	// 3
	// The divisor must be different from zero.
}

// ExampleNew_broadcast shows a single-value function applied to a range.
func ExampleNew_broadcast() {
	reg, err := cellfn.New()
	if err != nil {
		log.Fatal(err)
	}

	column := value.Values([][]value.CellValue{{-1.0, 2.0, -3.0}})
	out := reg.Invoke("ABS", nil, value.RangeArg(column))
	for _, row := range out.Grid().Rows() {
		fmt.Println(row[0])
	}
	// Output:
	// 1
	// 2
	// 3
}

func Example_customFunction() {
	reg := registry.NewRegistry()
	_, err := reg.Add("double", registry.Descriptor{
		Description: "Twice a number.",
		Args:        []schema.ArgDefinition{schema.Arg("value (number) The number.")},
		Compute: func(_ pipeline.EvalContext, args []value.Arg) (value.Result, error) {
			f, ok := args[0].Value().(float64)
			if !ok {
				return value.Result{}, value.NewValueError("[[FUNCTION_NAME]] expects a number.")
			}
			return value.ScalarResult(2 * f), nil
		},
	})
	if err != nil {
		log.Fatal(err)
	}
	reg.Freeze()

	fmt.Println(reg.Invoke("DOUBLE", nil, value.Args(21.0)...).Payload())
	fmt.Println(reg.Invoke("DOUBLE", nil, value.Args("x")...).Payload().Message)
	// Output:
	// 42
	// DOUBLE expects a number.
}
