package pipeline

import (
	"errors"

	"encore.dev/beta/errs"
)

var (
	// ErrPayloadConflict means a retry key was reused with a different request payload.
	ErrPayloadConflict = errors.New("idempotency key reused with different payload")

	// ErrInProgress means an attempt with the same key and payload has not completed yet.
	ErrInProgress = errors.New("idempotent request still in progress")
)

const (
	ReasonPayloadMismatch = "payload_mismatch"
	ReasonInProgress      = "in_progress"
)

// KeyDetails is attached to idempotency errors returned to callers.
type KeyDetails struct {
	Operation string `json:"operation"`
	Key       string `json:"key"`
	Reason    string `json:"reason"`
	Retryable bool   `json:"retryable"`
}

func (KeyDetails) ErrDetails() {}

func conflictError(operation, key string) error {
	return errs.B().
		Code(errs.AlreadyExists).
		Cause(ErrPayloadConflict).
		Msg("idempotency key conflict: payload does not match previous request").
		Details(KeyDetails{Operation: operation, Key: key, Reason: ReasonPayloadMismatch}).
		Err()
}

func inProgressError(operation, key string) error {
	return errs.B().
		Code(errs.Aborted).
		Cause(ErrInProgress).
		Msg("request with this idempotency key is currently being processed, retry later").
		Details(KeyDetails{Operation: operation, Key: key, Reason: ReasonInProgress, Retryable: true}).
		Err()
}

func internalError(err error, msg string) error {
	return errs.WrapCode(err, errs.Internal, msg)
}

// IsPayloadConflict reports whether err is an idempotency payload conflict.
func IsPayloadConflict(err error) bool {
	return errors.Is(err, ErrPayloadConflict)
}

// IsInProgress reports whether err is a retryable in-progress signal.
func IsInProgress(err error) bool {
	return errors.Is(err, ErrInProgress)
}
