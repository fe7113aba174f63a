package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for each error class. Callers classify failures with
// errors.Is against these, never by inspecting message text.
var (
	ErrValueIsRequired  = errors.New("value is required")
	ErrValueIsInvalid   = errors.New("value is invalid")
	ErrObjectNotFound   = errors.New("object not found")
	ErrNotAvailable     = errors.New("not available")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrPaymentFailed    = errors.New("payment failed")
	ErrNetworkFailure   = errors.New("network failure")
)

// sanitize flattens values destined for error messages so a single log line
// stays a single line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%s", v), "\n", " ")
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %s)", msg, sanitize(cause.Error()))
}

// ValueIsRequiredError indicates a required value was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName)), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error { return ErrValueIsRequired }

// ValueIsInvalidError indicates a value failed validation before any network
// call was made.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName)), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error { return ErrValueIsInvalid }

// ObjectNotFoundError indicates a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
	}
	return withCause(
		fmt.Sprintf("%s: param is: %s, ID is: %s", ErrObjectNotFound, sanitize(e.ParamName), sanitize(e.ID)),
		e.Cause,
	)
}

func (e *ObjectNotFoundError) Unwrap() error { return ErrObjectNotFound }

// NotAvailableError indicates the server rejected a mutation because its
// precondition no longer holds: stock changed, the item was removed upstream,
// or an order left the status the action was valid for. This is a normal
// business outcome, scoped to the subject it names.
type NotAvailableError struct {
	Subject string
	Reason  string
	Cause   error
}

func NewNotAvailableError(subject, reason string) *NotAvailableError {
	return &NotAvailableError{Subject: subject, Reason: reason}
}

func NewNotAvailableErrorWithCause(subject, reason string, cause error) *NotAvailableError {
	return &NotAvailableError{Subject: subject, Reason: reason, Cause: cause}
}

func (e *NotAvailableError) Error() string {
	return withCause(
		fmt.Sprintf("%s: subject is: %s, reason is: %s", ErrNotAvailable, sanitize(e.Subject), sanitize(e.Reason)),
		e.Cause,
	)
}

func (e *NotAvailableError) Unwrap() error { return ErrNotAvailable }

// NotAuthenticatedError indicates a missing or expired credential. Gated
// actions must surface this before any upstream call is attempted.
type NotAuthenticatedError struct {
	Reason string
	Cause  error
}

func NewNotAuthenticatedError(reason string) *NotAuthenticatedError {
	return &NotAuthenticatedError{Reason: reason}
}

func NewNotAuthenticatedErrorWithCause(reason string, cause error) *NotAuthenticatedError {
	return &NotAuthenticatedError{Reason: reason, Cause: cause}
}

func (e *NotAuthenticatedError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrNotAuthenticated, sanitize(e.Reason)), e.Cause)
}

func (e *NotAuthenticatedError) Unwrap() error { return ErrNotAuthenticated }

// Payment failure stages. Each stage carries a distinct user-facing meaning.
// A dismissed widget is not a failure stage: the abort path reports no
// payment error at all.
const (
	PaymentStageIntent       = "intent"
	PaymentStageVerification = "verification"
)

// PaymentFailedError indicates a failure in one of the payment protocols.
// ContactSupport is set for verification failures, where a charge may have
// succeeded while verification did not.
type PaymentFailedError struct {
	Stage          string
	ContactSupport bool
	Cause          error
}

func NewPaymentFailedError(stage string) *PaymentFailedError {
	return &PaymentFailedError{
		Stage:          stage,
		ContactSupport: stage == PaymentStageVerification,
	}
}

func NewPaymentFailedErrorWithCause(stage string, cause error) *PaymentFailedError {
	e := NewPaymentFailedError(stage)
	e.Cause = cause
	return e
}

func (e *PaymentFailedError) Error() string {
	return withCause(fmt.Sprintf("%s: stage is: %s", ErrPaymentFailed, sanitize(e.Stage)), e.Cause)
}

func (e *PaymentFailedError) Unwrap() error { return ErrPaymentFailed }

// NetworkFailureError indicates a transport-level failure (timeout,
// unreachable host). The action may still have taken effect upstream, so the
// caller may retry the same idempotent request.
type NetworkFailureError struct {
	Op    string
	Cause error
}

func NewNetworkFailureError(op string, cause error) *NetworkFailureError {
	return &NetworkFailureError{Op: op, Cause: cause}
}

func (e *NetworkFailureError) Error() string {
	return withCause(fmt.Sprintf("%s: op is: %s", ErrNetworkFailure, sanitize(e.Op)), e.Cause)
}

func (e *NetworkFailureError) Unwrap() error { return ErrNetworkFailure }
