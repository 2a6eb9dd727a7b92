package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

const (
	// ErrCodeEmptySequence indicates a consumer needed at least one value
	// to seed an accumulator or infer a shape, and the sequence held none.
	ErrCodeEmptySequence ErrorCode = "EMPTY_SEQUENCE"
	// ErrCodeInvalidInput indicates a parameter outside the operation's
	// domain.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInternal indicates a defect in seqkit itself.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
