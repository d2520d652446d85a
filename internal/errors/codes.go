package errors

// Code represents an error code
type Code string

// Error codes
//
// The first block mirrors the generic codes every service layer needs; the
// second block is the character-lifecycle taxonomy. Codes are part of the
// public contract: callers branch on them and they appear verbatim in
// responses, so they must stay stable.
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"

	// CodeGenerationFailed covers narrative and portrait generation failures.
	// Recoverable by re-running the whole creation saga.
	CodeGenerationFailed Code = "GENERATION_FAILED"

	// CodePublishFailed covers content-storage publish failures. Recoverable;
	// artifacts published by earlier stages are orphaned, never reused.
	CodePublishFailed Code = "PUBLISH_FAILED"

	// CodeLedgerFailed covers rejected or timed-out on-chain transactions.
	CodeLedgerFailed Code = "LEDGER_FAILED"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}
