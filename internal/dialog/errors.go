package dialog

import "errors"

// Sentinel errors returned by the dialogue controller and session manager.
// Handlers map these onto transport status codes; the controller itself never
// surfaces them to the conversation (user-visible failures are always chat
// messages).
var (
	// ErrSessionNotFound indicates an unknown or expired session id.
	ErrSessionNotFound = errors.New("session not found")

	// ErrTurnInProgress indicates input arrived while deferred replies from
	// the previous turn are still pending. Callers should retry once the
	// pending replies have been delivered.
	ErrTurnInProgress = errors.New("turn in progress")

	// ErrInputDisabled indicates free-text input is not accepted right now
	// (a structured form is open, or there is nothing to skip).
	ErrInputDisabled = errors.New("input disabled")

	// ErrEmptyInput indicates blank text was submitted to a step that
	// requires a non-empty value.
	ErrEmptyInput = errors.New("empty input")

	// ErrNoOptionsActive indicates an option was selected while no option
	// set is offered. This is a caller contract violation.
	ErrNoOptionsActive = errors.New("no options active")

	// ErrUnknownOption indicates the selected option id is not part of the
	// active option set.
	ErrUnknownOption = errors.New("unknown option")

	// ErrNoFormActive indicates a form submission or cancellation while no
	// service request form is open.
	ErrNoFormActive = errors.New("no form active")

	// ErrIncompleteForm indicates a submitted service request form is
	// missing required fields.
	ErrIncompleteForm = errors.New("incomplete form")

	// ErrUnknownLanguage indicates an unsupported language code.
	ErrUnknownLanguage = errors.New("unknown language")
)
