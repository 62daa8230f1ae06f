package value

import "errors"

// ErrorKind is the discriminant stored in the Value of an error payload.
type ErrorKind string

const (
	BadExpression      ErrorKind = "#BAD_EXPR"
	CircularDependency ErrorKind = "#CYCLE"
	GenericError       ErrorKind = "#ERROR"
	InvalidReference   ErrorKind = "#REF"
	UnknownFunction    ErrorKind = "#NAME?"
	NotAvailable       ErrorKind = "#N/A"
	DivisionByZero     ErrorKind = "#DIV/0!"
	InvalidNumber      ErrorKind = "#NUM!"
	WrongType          ErrorKind = "#VALUE!"
	NullIntersection   ErrorKind = "#NULL!"
	SpillBlocked       ErrorKind = "#SPILL!"
)

var errorKinds = map[string]struct{}{
	string(BadExpression):      {},
	string(CircularDependency): {},
	string(GenericError):       {},
	string(InvalidReference):   {},
	string(UnknownFunction):    {},
	string(NotAvailable):       {},
	string(DivisionByZero):     {},
	string(InvalidNumber):      {},
	string(WrongType):          {},
	string(NullIntersection):   {},
	string(SpillBlocked):       {},
}

// IsEvaluationError reports whether s is a recognized error discriminant.
func IsEvaluationError(s string) bool {
	_, ok := errorKinds[s]
	return ok
}

// EvaluationError is a user-facing spreadsheet error (#N/A, #REF, ...).
// It represents correct spreadsheet semantics, not a fault.
type EvaluationError struct {
	Kind    ErrorKind
	Message string
}

func (e *EvaluationError) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + e.Message
}

// Payload converts the error into the payload shape returned to callers.
func (e *EvaluationError) Payload() Payload {
	return Payload{Value: string(e.Kind), Message: e.Message}
}

// NewEvaluationError returns a generic "#ERROR" evaluation error.
func NewEvaluationError(message string) *EvaluationError {
	return &EvaluationError{Kind: GenericError, Message: message}
}

// NewBadExpressionError is raised when arguments do not fit the declared signature.
func NewBadExpressionError(message string) *EvaluationError {
	return &EvaluationError{Kind: BadExpression, Message: message}
}

// NewNotAvailableError is the #N/A error.
func NewNotAvailableError(message string) *EvaluationError {
	return &EvaluationError{Kind: NotAvailable, Message: message}
}

// NewInvalidReferenceError is the #REF error.
func NewInvalidReferenceError(message string) *EvaluationError {
	return &EvaluationError{Kind: InvalidReference, Message: message}
}

// NewDivisionByZeroError is the #DIV/0! error.
func NewDivisionByZeroError(message string) *EvaluationError {
	return &EvaluationError{Kind: DivisionByZero, Message: message}
}

// NewUnknownFunctionError is the #NAME? error.
func NewUnknownFunctionError(message string) *EvaluationError {
	return &EvaluationError{Kind: UnknownFunction, Message: message}
}

// NewNumberError is the #NUM! error.
func NewNumberError(message string) *EvaluationError {
	return &EvaluationError{Kind: InvalidNumber, Message: message}
}

// NewValueError is the #VALUE! error.
func NewValueError(message string) *EvaluationError {
	return &EvaluationError{Kind: WrongType, Message: message}
}

// AsEvaluationError extracts a recognized evaluation error from v, which may be
// an error (wrapped or not), an EvaluationError, or a Payload. It accepts the
// raw value of a recovered panic as well. Errors whose Kind is not a recognized
// discriminant are rejected.
func AsEvaluationError(v any) (*EvaluationError, bool) {
	var found *EvaluationError
	switch e := v.(type) {
	case nil:
		return nil, false
	case *EvaluationError:
		found = e
	case EvaluationError:
		found = &e
	case Payload:
		if kind, ok := e.ErrorKind(); ok {
			found = &EvaluationError{Kind: kind, Message: e.Message}
		}
	case *Payload:
		if e != nil {
			return AsEvaluationError(*e)
		}
	case error:
		if !errors.As(e, &found) {
			return nil, false
		}
	}
	if found == nil || !IsEvaluationError(string(found.Kind)) {
		return nil, false
	}
	return found, true
}
