package domain

import "errors"

// Kind classifies a domain error for transport-level mapping.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindValidation
	KindInvalidState
	KindCapacityExceeded
	KindAuthorization
)

// Error is a domain failure with a stable machine code. The code doubles as
// the i18n message key; Message is the default (English) rendering.
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

func NotFound(code, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

func Validation(code, message string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

func InvalidState(code, message string) *Error {
	return &Error{Kind: KindInvalidState, Code: code, Message: message}
}

func CapacityExceeded(code, message string) *Error {
	return &Error{Kind: KindCapacityExceeded, Code: code, Message: message}
}

func Authorization(code, message string) *Error {
	return &Error{Kind: KindAuthorization, Code: code, Message: message}
}

// Domain errors.
var (
	ErrProgramNotFound    = NotFound("program_not_found", "Program not found")
	ErrEnrollmentNotFound = NotFound("enrollment_not_found", "Enrollment not found")

	ErrProgramFull         = CapacityExceeded("program_full", "Program is full")
	ErrProgramStarted      = InvalidState("program_started", "Program has already started")
	ErrProgramNotAccepting = InvalidState("program_not_accepting", "Program is not accepting enrollments")

	ErrAlreadyEnrolled   = InvalidState("already_enrolled", "Already enrolled")
	ErrAlreadyCompleted  = InvalidState("already_completed", "Already completed this program")
	ErrReenrollCompleted = InvalidState("reenroll_completed", "Cannot re-enroll in completed program")
	ErrFeedbackNotOpen   = InvalidState("feedback_not_completed", "Can only provide feedback for completed enrollments")

	ErrNotEnrollmentOwner = Authorization("not_enrollment_owner", "This enrollment does not belong to you")
	ErrNotProgramOwner    = Authorization("not_program_owner", "Only the program owner can perform this action")
)

// Code extracts the machine code from a domain error, or "" for other errors.
func Code(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// KindOf extracts the error kind, or KindUnknown for non-domain errors.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}

func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

func IsValidation(err error) bool { return KindOf(err) == KindValidation }

func IsAuthorization(err error) bool { return KindOf(err) == KindAuthorization }

// IsInvalidState reports whether err is a state-transition failure.
// Capacity denials count as invalid state for callers that do not
// distinguish a waitlist-worthy rejection.
func IsInvalidState(err error) bool {
	k := KindOf(err)
	return k == KindInvalidState || k == KindCapacityExceeded
}

func IsCapacityExceeded(err error) bool { return KindOf(err) == KindCapacityExceeded }
