package ingest

import "fmt"

// Input-rejection codes. These are whole-input failures; per-row defects
// are dropped and reported in Stats/Warnings instead.
const (
	CodeRowsEmpty         = "ROWS_EMPTY"
	CodeRowsLimitExceeded = "ROWS_LIMIT_EXCEEDED"
	CodeBankDateMissing   = "BANK_DATE_COLUMN_MISSING"
)

// InputError is a structured, machine-readable input rejection.
type InputError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Received int    `json:"received,omitempty"`
	Max      int    `json:"max,omitempty"`
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func errRowsEmpty() *InputError {
	return &InputError{Code: CodeRowsEmpty, Message: "no rows supplied"}
}

func errRowsLimit(received, max int) *InputError {
	return &InputError{
		Code:     CodeRowsLimitExceeded,
		Message:  fmt.Sprintf("received %d rows, maximum is %d", received, max),
		Received: received,
		Max:      max,
	}
}

func errBankDateMissing() *InputError {
	return &InputError{
		Code:    CodeBankDateMissing,
		Message: "bank statement has no detectable date column; supply an explicit date mapping",
	}
}
