// Package schema describes the parameters of a spreadsheet function.
//
// Each parameter is declared with a compact string, parsed by ParseArg:
//
//	schema.Arg("value1 (number, range<number>) The first number or range to add.")
//	schema.Arg("value2 (number, range<number>, repeating) More numbers or ranges.")
//	schema.Arg("places (number, default=0) The number of decimal places.")
//
// Types are case-insensitive. A parameter declaring at least one RANGE type
// accepts a grid as-is (AcceptMatrix); a parameter declaring only RANGE types
// must receive one (AcceptMatrixOnly). Any other parameter triggers argument
// broadcasting when it is handed a grid larger than one cell.
//
// A Signature derives the arity bounds from the declarations and maps every
// call-site position to the declaration governing it, so that repeating groups
// (value1, [value2, ...]) can be declared once:
//
//	sig := schema.NewSignature(args)
//	def, ok := sig.SpecAt(4) // fifth argument -> the repeating "value2"
//
// Validate checks the declarations statically before a function is registered
// and reports every problem at once as an *AggregateError.
//
// The package has no dependencies beyond the Go standard library.
package schema
