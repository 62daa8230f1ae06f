package pipeline

import (
	"fmt"

	"github.com/aretw0/cellfn/pkg/value"
)

func withResultHandling(name string, compute Compute) stage {
	return func(ctx EvalContext, args []value.Arg) (value.Output, error) {
		res, err := compute(ctx, args)
		if err != nil {
			return value.Output{}, err
		}
		return normalize(name, res)
	}
}

// normalize maps every Result variant to a payload or a grid of payloads.
// Payload messages are updated in place.
func normalize(name string, res value.Result) (value.Output, error) {
	switch res.Kind() {
	case value.ResultScalar:
		return value.SingleOutput(value.Of(res.Scalar())), nil

	case value.ResultPayload:
		p := res.Payload()
		p.Message = ReplaceFunctionName(p.Message, name)
		return value.SingleOutput(p), nil

	case value.ResultPayloadGrid:
		g := res.PayloadGrid()
		if err := g.Validate(); err != nil {
			return value.Output{}, err
		}
		g.ForEach(func(_, _ int, p *value.Payload) {
			p.Message = ReplaceFunctionName(p.Message, name)
		})
		return value.GridOutput(g), nil

	case value.ResultScalarGrid:
		g := res.ScalarGrid()
		if err := g.Validate(); err != nil {
			return value.Output{}, err
		}
		return value.GridOutput(value.Map(g, value.Of)), nil

	default:
		return value.Output{}, fmt.Errorf("%w: %s", ErrInvalidResult, res.Kind())
	}
}
