// Package errors defines the structured error type shared by every
// operation. Each error carries enough context (code, offending input,
// suggestions, recovery guidance) for fully automated caller-side recovery.
package errors

import "fmt"

// ErrorCode identifies an error taxon.
type ErrorCode string

const (
	ErrInvalidInput      ErrorCode = "INVALID_INPUT"       // malformed/empty identifiers, checked before any I/O
	ErrCharacterNotFound ErrorCode = "CHARACTER_NOT_FOUND" // closed-roster validation failure, carries suggestions
	ErrMoveNotFound      ErrorCode = "MOVE_NOT_FOUND"      // no command match in the character's movelist
	ErrNetwork           ErrorCode = "NETWORK_ERROR"       // provider fetch failure, surfaced unchanged
	ErrUpstreamShape     ErrorCode = "UPSTREAM_SHAPE"      // payload missing the expected move array; fatal, never retried
)

// FrameError is a structured error with code, offending input, and
// recovery metadata.
type FrameError struct {
	Code        ErrorCode `json:"code"`
	Message     string    `json:"message"`
	Input       string    `json:"input,omitempty"`
	Suggestions []string  `json:"suggestions,omitempty"`
	DidYouMean  string    `json:"didYouMean,omitempty"`
	Recovery    string    `json:"recovery,omitempty"`
}

// Error implements the error interface.
func (e *FrameError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidInput creates an error for malformed request parameters.
func NewInvalidInput(msg string) *FrameError {
	return &FrameError{
		Code:    ErrInvalidInput,
		Message: msg,
	}
}

// NewCharacterNotFound creates a roster-validation error. didYouMean must
// be empty unless the best suggestion cleared the similarity threshold.
func NewCharacterNotFound(input string, suggestions []string, didYouMean string) *FrameError {
	return &FrameError{
		Code:        ErrCharacterNotFound,
		Message:     fmt.Sprintf("unknown character: %q", input),
		Input:       input,
		Suggestions: suggestions,
		DidYouMean:  didYouMean,
		Recovery:    "use list_characters for the full roster, or retry with a suggested name",
	}
}

// NewMoveNotFound creates an error for a command with no match in the
// character's movelist.
func NewMoveNotFound(character, command string, suggestions []string, didYouMean string) *FrameError {
	return &FrameError{
		Code:        ErrMoveNotFound,
		Message:     fmt.Sprintf("no move %q for %s", command, character),
		Input:       command,
		Suggestions: suggestions,
		DidYouMean:  didYouMean,
		Recovery:    "use get_movelist to see every command for this character",
	}
}

// NewNetwork wraps an upstream fetch failure. No internal retry happens;
// the cause is surfaced unchanged.
func NewNetwork(err error) *FrameError {
	msg := "upstream fetch failed"
	if err != nil {
		msg = err.Error()
	}
	return &FrameError{
		Code:     ErrNetwork,
		Message:  msg,
		Recovery: "the frame-data provider may be unreachable; retry later",
	}
}

// NewUpstreamShape creates an error for a payload missing the expected
// move array. Shape mismatches are fatal and never retried or guessed at.
func NewUpstreamShape(character, detail string) *FrameError {
	return &FrameError{
		Code:    ErrUpstreamShape,
		Message: fmt.Sprintf("unexpected payload shape for %s: %s", character, detail),
		Input:   character,
	}
}

// Is checks if an error is a FrameError with the given code.
func Is(err error, code ErrorCode) bool {
	if fErr, ok := err.(*FrameError); ok {
		return fErr.Code == code
	}
	return false
}
