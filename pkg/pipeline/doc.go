// Package pipeline wraps a raw compute callable into the callable that the
// evaluator invokes for every cell.
//
// A wrapped call goes through three stages, outermost first:
//
//	error classification -> vectorization -> result normalization -> compute
//
// Vectorization broadcasts a call across range arguments given to parameters
// that do not accept ranges. Result normalization turns whatever the compute
// callable returned (see value.Result) into a payload or a grid of payloads,
// and resolves the [[FUNCTION_NAME]] placeholder in messages. Error
// classification is the only place where failures become payloads: returned
// errors and panics alike. Recognized evaluation errors (#N/A, #REF, ...) are
// passed through; anything else is logged and reported as a generic #ERROR.
//
// A Callable never panics and never returns an error. Wrapped callables hold no
// mutable state and are safe for concurrent use.
package pipeline
