package value

import "encoding/json"

// ResultKind tags the variant held by a Result.
type ResultKind uint8

const (
	ResultInvalid ResultKind = iota
	ResultScalar
	ResultPayload
	ResultScalarGrid
	ResultPayloadGrid
)

func (k ResultKind) String() string {
	switch k {
	case ResultScalar:
		return "scalar"
	case ResultPayload:
		return "payload"
	case ResultScalarGrid:
		return "scalar grid"
	case ResultPayloadGrid:
		return "payload grid"
	default:
		return "invalid"
	}
}

// Result is what a compute callable returns. Exactly one variant is set; the
// zero Result is invalid.
type Result struct {
	kind     ResultKind
	scalar   CellValue
	payload  Payload
	scalars  Grid[CellValue]
	payloads Grid[Payload]
}

// ScalarResult returns a raw cell value.
func ScalarResult(v CellValue) Result { return Result{kind: ResultScalar, scalar: v} }

// PayloadResult returns a payload, possibly an error payload.
func PayloadResult(p Payload) Result { return Result{kind: ResultPayload, payload: p} }

// ScalarGridResult returns a grid of raw cell values.
func ScalarGridResult(g Grid[CellValue]) Result { return Result{kind: ResultScalarGrid, scalars: g} }

// PayloadGridResult returns a grid of payloads.
func PayloadGridResult(g Grid[Payload]) Result { return Result{kind: ResultPayloadGrid, payloads: g} }

func (r Result) Kind() ResultKind { return r.kind }
func (r Result) Scalar() CellValue { return r.scalar }
func (r Result) Payload() Payload { return r.payload }
func (r Result) ScalarGrid() Grid[CellValue] { return r.scalars }
func (r Result) PayloadGrid() Grid[Payload] { return r.payloads }

// Output is the normalized result of a wrapped call: a single payload or a grid
// of payloads. Raw scalars and raw grids never escape the pipeline.
type Output struct {
	payload Payload
	grid    Grid[Payload]
	isGrid  bool
}

// SingleOutput wraps one payload.
func SingleOutput(p Payload) Output { return Output{payload: p} }

// GridOutput wraps a grid of payloads.
func GridOutput(g Grid[Payload]) Output { return Output{grid: g, isGrid: true} }

// IsGrid reports whether the output is a grid.
func (o Output) IsGrid() bool { return o.isGrid }

// Payload returns the single payload. It is the zero payload for grids.
func (o Output) Payload() Payload { return o.payload }

// Grid returns the grid, or nil for a single payload.
func (o Output) Grid() Grid[Payload] { return o.grid }

// First returns the single payload, or the top-left cell of a grid.
// An empty grid yields an empty payload.
func (o Output) First() Payload {
	if !o.isGrid {
		return o.payload
	}
	if o.grid.IsEmpty() {
		return Payload{}
	}
	return o.grid[0][0]
}

// MarshalJSON encodes a single payload as an object and a grid as an array of
// columns.
func (o Output) MarshalJSON() ([]byte, error) {
	if o.isGrid {
		return json.Marshal(o.grid)
	}
	return json.Marshal(o.payload)
}
