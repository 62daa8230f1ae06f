/*
Package value defines the data that flows through a function call.

A call receives a vector of Arg (omitted, a single Payload, or a Grid of
payloads for a range), the leaf compute callable answers with a Result (a tagged
union of scalar, payload, grid of scalars and grid of payloads), and the pipeline
hands back an Output: always a Payload or a Grid of payloads.

# Orientation

Grids are column-major. g[col][row] addresses a cell, NumCols is len(g) and
NumRows is the length of the first column. A range A1:C2 is therefore a grid of
three columns holding two rows each. Use FromRows when writing a row-major
literal, it is very easy to transpose by mistake otherwise.

# Errors

An evaluation error is an ordinary payload whose Value is one of the recognized
error kinds ("#N/A", "#REF", ...) and whose Message explains it. EvaluationError
is the error-typed view of the same thing, used by compute callables that want to
return or raise a user-facing error.
*/
package value
