package registry

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidFunctionName is returned when a name does not match ^[A-Z0-9_.]+$ after uppercasing.
	ErrInvalidFunctionName = errors.New("invalid function name")
	// ErrUnknownFunction is returned by Lookup. The concrete error is an *UnknownFunctionError.
	ErrUnknownFunction = errors.New("unknown function")
	// ErrDuplicateFunction is returned when a canonical name is registered twice without WithOverride.
	ErrDuplicateFunction = errors.New("function already registered")
	// ErrRegistryFrozen is returned by Add after Freeze.
	ErrRegistryFrozen = errors.New("registry is frozen")
	// ErrInvalidDescriptor wraps argument declaration failures and missing compute callables.
	ErrInvalidDescriptor = errors.New("invalid function descriptor")
)

// UnknownFunctionError reports a failed lookup with the closest registered names.
type UnknownFunctionError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownFunctionError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unknown function %s", e.Name)
	}
	return fmt.Sprintf("unknown function %s (did you mean %s?)", e.Name, strings.Join(e.Suggestions, ", "))
}

func (e *UnknownFunctionError) Is(target error) bool {
	return target == ErrUnknownFunction
}
