package pipeline

import (
	"fmt"
	"runtime/debug"

	"github.com/aretw0/cellfn/pkg/value"
)

func withErrorHandling(name string, next stage, cfg config) Callable {
	return func(ctx EvalContext, args ...value.Arg) (out value.Output) {
		if ctx == nil {
			ctx = Background
		}
		defer func() {
			if r := recover(); r != nil {
				out = handleFault(name, r, debug.Stack(), cfg)
			}
		}()

		res, err := next(ctx, args)
		if err != nil {
			return handleFault(name, err, nil, cfg)
		}
		cfg.observer.ObserveCall(name, outcomeOf(res))
		return res
	}
}

// handleFault converts a returned error or a recovered panic value into a
// payload. stack is only set for panics.
func handleFault(name string, fault any, stack []byte, cfg config) value.Output {
	if evalErr, ok := value.AsEvaluationError(fault); ok {
		p := evalErr.Payload()
		p.Message = ReplaceFunctionName(p.Message, name)
		cfg.observer.ObserveCall(name, OutcomeEvaluationError)
		return value.SingleOutput(p)
	}

	attrs := []any{"function", name, "error", fault}
	if stack != nil {
		attrs = append(attrs, "stack", string(stack))
	}
	cfg.logger.Error("function implementation error", attrs...)
	cfg.observer.ObserveCall(name, OutcomeImplementationError)

	msg := ImplementationErrorMessage
	if detail := faultMessage(fault); detail != "" {
		msg += " " + detail
	}
	return value.SingleOutput(value.NewEvaluationError(msg).Payload())
}

func faultMessage(fault any) string {
	switch f := fault.(type) {
	case error:
		return f.Error()
	case value.Payload:
		return f.Message
	case string:
		return f
	case fmt.Stringer:
		return f.String()
	default:
		return ""
	}
}

func outcomeOf(out value.Output) Outcome {
	if !out.IsGrid() && out.Payload().IsError() {
		return OutcomeEvaluationError
	}
	return OutcomeSuccess
}
