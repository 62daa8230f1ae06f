package pipeline

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/aretw0/cellfn/pkg/schema"
	"github.com/aretw0/cellfn/pkg/value"
)

// FunctionNamePlaceholder is replaced by the registered function name in the
// message of every payload leaving the pipeline.
const FunctionNamePlaceholder = "[[FUNCTION_NAME]]"

// ImplementationErrorMessage is the message of the #ERROR payload returned
// when a function body fails unexpectedly.
const ImplementationErrorMessage = "An unexpected error occurred. Submit a support ticket."

// ErrInvalidResult is reported when a compute callable returns the zero Result.
var ErrInvalidResult = errors.New("pipeline: compute returned an invalid result")

// Compute is a raw function body. Evaluation errors may be returned as an
// *value.EvaluationError or as an error payload; both end up as payloads.
type Compute func(ctx EvalContext, args []value.Arg) (value.Result, error)

// Callable is a wrapped function, as stored by the registry.
type Callable func(ctx EvalContext, args ...value.Arg) value.Output

// stage is the internal shape shared by vectorization and normalization.
// Errors travel up to the classification boundary.
type stage func(ctx EvalContext, args []value.Arg) (value.Output, error)

// Outcome is the terminal state of one wrapped call.
type Outcome string

const (
	OutcomeSuccess             Outcome = "success"
	OutcomeEvaluationError     Outcome = "evaluation_error"
	OutcomeImplementationError Outcome = "implementation_error"
)

// Observer receives per-call signals. Implementations must be safe for
// concurrent use.
type Observer interface {
	ObserveCall(function string, outcome Outcome)
	ObserveBroadcast(function string, cells int)
}

type nopObserver struct{}

func (nopObserver) ObserveCall(string, Outcome) {}
func (nopObserver) ObserveBroadcast(string, int) {}

type config struct {
	logger   *slog.Logger
	observer Observer
}

// Option configures a wrapped callable.
type Option func(*config)

// WithLogger sets the diagnostic logger used for implementation errors.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithObserver sets the call observer (e.g. metrics).
func WithObserver(observer Observer) Option {
	return func(c *config) {
		if observer != nil {
			c.observer = observer
		}
	}
}

// Wrap composes error classification, vectorization and result normalization
// around compute. name must already be canonical.
func Wrap(name string, sig schema.Signature, compute Compute, opts ...Option) Callable {
	cfg := config{
		logger:   slog.Default(),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	normalized := withResultHandling(name, compute)
	vectorized := withInputHandling(name, sig, normalized, cfg.observer)
	return withErrorHandling(name, vectorized, cfg)
}

// ReplaceFunctionName substitutes the first FunctionNamePlaceholder in msg.
func ReplaceFunctionName(msg, name string) string {
	if !strings.Contains(msg, FunctionNamePlaceholder) {
		return msg
	}
	return strings.Replace(msg, FunctionNamePlaceholder, name, 1)
}
