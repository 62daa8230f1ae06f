package pipeline

// EvalContext is the read-only capability object passed fresh to every call.
type EvalContext interface {
	// Locale returns the locale used for formatting, e.g. "en_US".
	Locale() string
	// Origin returns the cell being evaluated, when known.
	Origin() (col, row int, ok bool)
}

// StaticContext is a plain EvalContext.
type StaticContext struct {
	LocaleName string
	Col, Row   int
	HasOrigin  bool
}

func (c StaticContext) Locale() string { return c.LocaleName }

func (c StaticContext) Origin() (int, int, bool) { return c.Col, c.Row, c.HasOrigin }

// DefaultLocale is used when a call is made without a context.
const DefaultLocale = "en_US"

// Background is the context substituted for a nil EvalContext.
var Background EvalContext = StaticContext{LocaleName: DefaultLocale}
