// Package functions holds the built-in function modules and the bulk loader
// that registers them.
//
// Function bodies live in Go; descriptions and argument declarations live in
// the embedded manifest.yaml, keyed by identifier. Identifiers cannot contain
// ".", so FILTER_ROWS is registered as FILTER.ROWS.
//
//	reg, err := functions.NewRegistry(registry.WithLogger(logger))
//	out := reg.Invoke("SUM", nil, value.Args(2.0, 3.0)...)
package functions
