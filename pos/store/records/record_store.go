package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"posapp/pos/model"
	"posapp/pos/store/pgtx"
)

var (
	// ErrDuplicateRecord is returned by CreatePending when the (caller, operation, key)
	// triple is already taken. It is an expected outcome under concurrent retries.
	ErrDuplicateRecord = errors.New("idempotency record already exists")

	// ErrRecordNotPending is returned when a record could not be moved out of the pending state
	// because another writer got there first.
	ErrRecordNotPending = errors.New("idempotency record is not pending")
)

// RecordStore persists idempotency records on top of the records Querier.
// The unique index on (caller_id, operation_name, key) is the only coordination
// between concurrent attempts.
type RecordStore struct {
	queries Querier
	now     func() time.Time
	newID   func() uuid.UUID
}

func NewRecordStore(queries Querier) *RecordStore {
	return &RecordStore{
		queries: queries,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.New,
	}
}

// Find returns the record for the triple, or nil when none exists.
func (s *RecordStore) Find(ctx context.Context, operationName, key string, callerID *uuid.UUID) (*model.IdempotencyRecord, error) {
	row, err := s.queries.FindRecord(ctx, FindRecordParams{
		OperationName: operationName,
		Key:           key,
		CallerID:      pgtx.NullableUUID(callerID),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find idempotency record %s/%s: %w", operationName, key, err)
	}
	return convertDBRecordToModel(row), nil
}

// CreatePending inserts a record without a response. It fails with ErrDuplicateRecord
// if the triple already exists.
func (s *RecordStore) CreatePending(ctx context.Context, operationName, key, requestHash string, callerID *uuid.UUID) (*model.IdempotencyRecord, error) {
	row, err := s.queries.InsertPendingRecord(ctx, InsertPendingRecordParams{
		ID:            pgtx.UUID(s.newID()),
		CallerID:      pgtx.NullableUUID(callerID),
		OperationName: operationName,
		Key:           key,
		RequestHash:   requestHash,
		CreatedAt:     pgtype.Timestamptz{Time: s.now(), Valid: true},
	})
	if err != nil {
		// ON CONFLICT DO NOTHING yields no row; a raised 23505 means the same thing.
		if errors.Is(err, pgx.ErrNoRows) || pgtx.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %w", ErrDuplicateRecord, err)
		}
		return nil, fmt.Errorf("create idempotency record %s/%s: %w", operationName, key, err)
	}
	return convertDBRecordToModel(row), nil
}

// MarkCompleted stores the response of a pending record obtained from CreatePending.
func (s *RecordStore) MarkCompleted(ctx context.Context, record *model.IdempotencyRecord, responsePayload []byte) error {
	completedAt := s.now()
	affected, err := s.queries.CompleteRecord(ctx, CompleteRecordParams{
		ID:              pgtx.UUID(record.ID),
		ResponsePayload: pgtype.Text{String: string(responsePayload), Valid: true},
		CompletedAt:     pgtype.Timestamptz{Time: completedAt, Valid: true},
	})
	if err != nil {
		return fmt.Errorf("complete idempotency record %s: %w", record.ID, err)
	}
	if affected == 0 {
		return fmt.Errorf("complete idempotency record %s: %w", record.ID, ErrRecordNotPending)
	}

	record.ResponsePayload = json.RawMessage(responsePayload)
	record.CompletedAt = &completedAt
	return nil
}

// ReleasePending deletes a record that is still pending so the key can be reused.
func (s *RecordStore) ReleasePending(ctx context.Context, record *model.IdempotencyRecord) error {
	affected, err := s.queries.DeletePendingRecord(ctx, pgtx.UUID(record.ID))
	if err != nil {
		return fmt.Errorf("release idempotency record %s: %w", record.ID, err)
	}
	if affected == 0 {
		return fmt.Errorf("release idempotency record %s: %w", record.ID, ErrRecordNotPending)
	}
	return nil
}

// convertDBRecordToModel converts a database record to the domain model
func convertDBRecordToModel(row IdempotencyRecord) *model.IdempotencyRecord {
	record := &model.IdempotencyRecord{
		ID:            pgtx.FromUUID(row.ID),
		CallerID:      pgtx.FromNullableUUID(row.CallerID),
		OperationName: row.OperationName,
		Key:           row.Key,
		RequestHash:   row.RequestHash,
		CreatedAt:     row.CreatedAt.Time,
	}

	if row.ResponsePayload.Valid {
		record.ResponsePayload = json.RawMessage(row.ResponsePayload.String)
	}

	if row.CompletedAt.Valid {
		completedAt := row.CompletedAt.Time
		record.CompletedAt = &completedAt
	}

	return record
}
