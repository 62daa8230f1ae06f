package value

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEvaluationError(t *testing.T) {
	for _, kind := range []ErrorKind{BadExpression, CircularDependency, GenericError, InvalidReference,
		UnknownFunction, NotAvailable, DivisionByZero, InvalidNumber, WrongType, NullIntersection, SpillBlocked} {
		assert.True(t, IsEvaluationError(string(kind)), kind)
	}
	assert.False(t, IsEvaluationError("#FOO"))
	assert.False(t, IsEvaluationError("N/A"))
}

func TestPayload_IsError(t *testing.T) {
	assert.True(t, NewNotAvailableError("missing").Payload().IsError())
	assert.False(t, Of("#N/A!").IsError())
	assert.False(t, Of(3.0).IsError())

	kind, ok := Payload{Value: "#REF"}.ErrorKind()
	require.True(t, ok)
	assert.Equal(t, InvalidReference, kind)
}

func TestEvaluationError_Error(t *testing.T) {
	assert.Equal(t, "#N/A: not found", NewNotAvailableError("not found").Error())
	assert.Equal(t, "#DIV/0!", (&EvaluationError{Kind: DivisionByZero}).Error())
}

func TestAsEvaluationError(t *testing.T) {
	ref := NewInvalidReferenceError("bad ref")

	tests := []struct {
		name string
		in   any
		want *EvaluationError
	}{
		{"pointer", ref, ref},
		{"value", *ref, ref},
		{"wrapped", fmt.Errorf("lookup: %w", ref), ref},
		{"payload", ref.Payload(), ref},
		{"payload pointer", &Payload{Value: "#REF", Message: "bad ref"}, ref},
		{"plain error", errors.New("boom"), nil},
		{"string", "boom", nil},
		{"success payload", Of(1.0), nil},
		{"unknown kind", &EvaluationError{Kind: "#FOO", Message: "x"}, nil},
		{"nil", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AsEvaluationError(tt.in)
			if tt.want == nil {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.want.Kind, got.Kind)
			assert.Equal(t, tt.want.Message, got.Message)
		})
	}
}
