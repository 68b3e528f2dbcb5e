package plan

import "fmt"

// ErrorKind classifies plan generation failures for the caller.
type ErrorKind string

const (
	// KindDocument: the source document was missing, empty, or oversized.
	KindDocument ErrorKind = "document"
	// KindProvider: the model provider failed or timed out.
	KindProvider ErrorKind = "provider"
	// KindInvalidJSON: the response was not parseable JSON even after
	// fence stripping.
	KindInvalidJSON ErrorKind = "invalid_json"
	// KindValidation: the parsed plan violated the structural rules.
	KindValidation ErrorKind = "validation"
	// KindRetriesExhausted: the attempt budget ran out.
	KindRetriesExhausted ErrorKind = "retries_exhausted"
)

// Error is a classified plan generation failure. No partial plan ever
// accompanies one.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("plan generation (%s): %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
