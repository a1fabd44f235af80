package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"posapp/pos/model"
	"posapp/pos/store/pgtx"
	"posapp/pos/store/records"
)

// memoryRecordStore mimics the unique index of the records table.
type memoryRecordStore struct {
	mu      sync.Mutex
	records map[string]*model.IdempotencyRecord
	inTx    []bool
}

func newMemoryRecordStore() *memoryRecordStore {
	return &memoryRecordStore{records: make(map[string]*model.IdempotencyRecord)}
}

func memoryKey(operationName, key string, callerID *uuid.UUID) string {
	caller := "anonymous"
	if callerID != nil {
		caller = callerID.String()
	}
	return caller + "|" + operationName + "|" + key
}

func (s *memoryRecordStore) Find(ctx context.Context, operationName, key string, callerID *uuid.UUID) (*model.IdempotencyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[memoryKey(operationName, key, callerID)]
	if !ok {
		return nil, nil
	}
	clone := *record
	return &clone, nil
}

func (s *memoryRecordStore) CreatePending(ctx context.Context, operationName, key, requestHash string, callerID *uuid.UUID) (*model.IdempotencyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, inTx := pgtx.TxFromContext(ctx)
	s.inTx = append(s.inTx, inTx)

	k := memoryKey(operationName, key, callerID)
	if _, ok := s.records[k]; ok {
		return nil, fmt.Errorf("%w: %s", records.ErrDuplicateRecord, k)
	}

	record := &model.IdempotencyRecord{
		ID:            uuid.New(),
		CallerID:      callerID,
		OperationName: operationName,
		Key:           key,
		RequestHash:   requestHash,
		CreatedAt:     time.Now().UTC(),
	}
	s.records[k] = record
	clone := *record
	return &clone, nil
}

func (s *memoryRecordStore) MarkCompleted(ctx context.Context, record *model.IdempotencyRecord, responsePayload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.records[memoryKey(record.OperationName, record.Key, record.CallerID)]
	if !ok || stored.ID != record.ID || stored.IsCompleted() {
		return records.ErrRecordNotPending
	}
	completedAt := time.Now().UTC()
	stored.ResponsePayload = append([]byte(nil), responsePayload...)
	stored.CompletedAt = &completedAt
	record.ResponsePayload = stored.ResponsePayload
	record.CompletedAt = &completedAt
	return nil
}

func (s *memoryRecordStore) ReleasePending(ctx context.Context, record *model.IdempotencyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := memoryKey(record.OperationName, record.Key, record.CallerID)
	stored, ok := s.records[k]
	if !ok || stored.ID != record.ID || stored.IsCompleted() {
		return records.ErrRecordNotPending
	}
	delete(s.records, k)
	return nil
}

// seed stores a record directly, bypassing the stage.
func (s *memoryRecordStore) seed(record *model.IdempotencyRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[memoryKey(record.OperationName, record.Key, record.CallerID)] = record
}

func (s *memoryRecordStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
