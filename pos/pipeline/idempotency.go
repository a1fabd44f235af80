package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"encore.dev/rlog"
	"github.com/google/uuid"

	"posapp/pos/model"
	"posapp/pos/store/pgtx"
	"posapp/pos/store/records"
)

//go:generate mockgen -source=idempotency.go -destination=../mocks/pipeline/idempotency_store/record_store.go -package=idempotency_store

const releaseTimeout = 5 * time.Second

// RecordStore is the persistence the Idempotency Stage depends on.
type RecordStore interface {
	Find(ctx context.Context, operationName, key string, callerID *uuid.UUID) (*model.IdempotencyRecord, error)
	CreatePending(ctx context.Context, operationName, key, requestHash string, callerID *uuid.UUID) (*model.IdempotencyRecord, error)
	MarkCompleted(ctx context.Context, record *model.IdempotencyRecord, responsePayload []byte) error
	ReleasePending(ctx context.Context, record *model.IdempotencyRecord) error
}

// IdempotencyStage makes idempotent commands replay-safe under a caller-supplied key.
type IdempotencyStage struct {
	records          RecordStore
	releaseOnFailure bool
}

type IdempotencyOption func(*IdempotencyStage)

// WithReleaseOnFailure deletes the pending record when the handler fails, so the
// same key can be retried. By default the record stays pending.
func WithReleaseOnFailure(release bool) IdempotencyOption {
	return func(s *IdempotencyStage) {
		s.releaseOnFailure = release
	}
}

func NewIdempotencyStage(store RecordStore, opts ...IdempotencyOption) *IdempotencyStage {
	s := &IdempotencyStage{records: store}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Idempotent runs next at most once per (caller, operation, key). Repeated calls with the
// same payload get the stored response back; a different payload under the same key is
// rejected with ErrPayloadConflict, and a still pending attempt with ErrInProgress.
func Idempotent[Req, Resp any](ctx context.Context, s *IdempotencyStage, op Operation, req Req, next func(context.Context) (Resp, error)) (Resp, error) {
	var zero Resp

	ic := IdempotencyFromContext(ctx)
	if s == nil || !op.Idempotent {
		return next(ctx)
	}
	if !ic.Enabled() {
		recordOutcome(op.Name, outcomeBypass)
		return next(ctx)
	}

	key, callerID := ic.Key(), ic.CallerID()

	requestHash, err := HashRequest(req)
	if err != nil {
		return zero, internalError(err, "failed to hash request")
	}

	existing, err := s.records.Find(ctx, op.Name, key, callerID)
	if err != nil {
		rlog.Error("failed to look up idempotency record", "operation", op.Name, "key", key, "error", err)
		return zero, internalError(err, "failed to look up idempotency record")
	}
	if existing != nil {
		return replay[Resp](op, key, existing, requestHash)
	}

	record, err := s.records.CreatePending(ctx, op.Name, key, requestHash, callerID)
	if err != nil {
		if !errors.Is(err, records.ErrDuplicateRecord) {
			rlog.Error("failed to create idempotency record", "operation", op.Name, "key", key, "error", err)
			return zero, internalError(err, "failed to create idempotency record")
		}

		rlog.Debug("lost idempotency insert race, re-reading record", "operation", op.Name, "key", key)
		winner, findErr := s.records.Find(ctx, op.Name, key, callerID)
		if findErr != nil {
			return zero, internalError(findErr, "failed to look up idempotency record")
		}
		if winner == nil {
			// The competing record is gone (released or rolled back); surface the original failure.
			return zero, internalError(err, "failed to create idempotency record")
		}
		return replay[Resp](op, key, winner, requestHash)
	}

	resp, err := next(ctx)
	if err != nil {
		recordOutcome(op.Name, outcomeFailed)
		s.release(ctx, op, record)
		return zero, err
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		rlog.Error("failed to serialize idempotent response", "operation", op.Name, "key", key, "error", err)
		return zero, internalError(err, "failed to serialize response")
	}

	if err := s.records.MarkCompleted(ctx, record, payload); err != nil {
		rlog.Error("failed to complete idempotency record", "operation", op.Name, "key", key, "record_id", record.ID, "error", err)
		return zero, internalError(err, "failed to complete idempotency record")
	}

	recordOutcome(op.Name, outcomeExecuted)
	return resp, nil
}

func replay[Resp any](op Operation, key string, record *model.IdempotencyRecord, requestHash string) (Resp, error) {
	var resp Resp

	if record.RequestHash != requestHash {
		recordOutcome(op.Name, outcomeConflict)
		rlog.Warn("idempotency key reused with different payload", "operation", op.Name, "key", key)
		return resp, conflictError(op.Name, key)
	}

	if !record.IsCompleted() {
		recordOutcome(op.Name, outcomeInProgress)
		return resp, inProgressError(op.Name, key)
	}

	if err := json.Unmarshal(record.ResponsePayload, &resp); err != nil {
		rlog.Error("failed to deserialize stored response", "operation", op.Name, "key", key, "record_id", record.ID, "error", err)
		return resp, internalError(err, "failed to deserialize cached idempotent response")
	}

	recordOutcome(op.Name, outcomeReplayed)
	rlog.Debug("replaying stored response", "operation", op.Name, "key", key, "record_id", record.ID)
	return resp, nil
}

func (s *IdempotencyStage) release(ctx context.Context, op Operation, record *model.IdempotencyRecord) {
	if !s.releaseOnFailure {
		return
	}
	// Inside an outer transaction the pending insert is rolled back with everything else.
	if _, ok := pgtx.TxFromContext(ctx); ok {
		return
	}

	releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
	defer cancel()

	if err := s.records.ReleasePending(releaseCtx, record); err != nil {
		rlog.Warn("failed to release pending idempotency record", "operation", op.Name, "record_id", record.ID, "error", err)
	}
}
