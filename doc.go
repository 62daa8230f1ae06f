/*
Package cellfn is a runtime for spreadsheet functions.

A function is a plain Go body plus a declaration of its arguments. Registering
it wraps the body in a calling pipeline that every function shares:

  - Error classification: evaluation errors and implementation faults,
    including panics, become error payloads such as #DIV/0! or #ERROR.
    A call never fails with a Go error.
  - Vectorization: a range given where a single value is expected is
    broadcast, and the function is called once per cell.
  - Result normalization: raw values and grids become payloads carrying a
    value, a display format and a message.

# Usage

	reg, err := cellfn.New()
	if err != nil {
		log.Fatal(err)
	}
	out := reg.Invoke("ROUND", nil, value.Args(2.5)...)
	fmt.Println(out.Payload().Value) // 3

Custom functions are added to a registry before it is frozen:

	reg := registry.NewRegistry(registry.WithLogger(logger))
	_, err := reg.Add("DOUBLE", registry.Descriptor{
		Description: "Twice a number.",
		Args:        []schema.ArgDefinition{schema.Arg("value (number) The number.")},
		Compute: func(_ pipeline.EvalContext, args []value.Arg) (value.Result, error) {
			f, _ := args[0].Value().(float64)
			return value.ScalarResult(2 * f), nil
		},
	})
	reg.Freeze()

# Packages

  - pkg/value: payloads, grids, arguments, results and error kinds.
  - pkg/schema: argument declarations and signatures.
  - pkg/pipeline: the calling pipeline.
  - pkg/registry: the function registry.
  - pkg/functions: the built-in functions and their manifest.
  - pkg/observability: prometheus metrics fed by the pipeline.
  - pkg/adapters/http and pkg/adapters/mcp: remote access to a registry.
*/
package cellfn
