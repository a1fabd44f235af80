package idempotency

import (
	"context"
	"errors"
	"time"

	"encore.dev/rlog"
	"encore.dev/storage/cache"
	"github.com/google/uuid"

	"posapp/pos/model"
	"posapp/pos/pipeline"
)

const anonymousCaller = "anonymous"

// IdempotencyCluster is the cache cluster for idempotency
var IdempotencyCluster = cache.NewCluster("idempotency-cluster", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// ReplayCache holds completed idempotency records. Pending records are never cached.
var ReplayCache = cache.NewStructKeyspace[model.IdempotencyCacheKey, model.IdempotencyRecord](
	IdempotencyCluster,
	cache.KeyspaceConfig{
		KeyPattern:    "idempotency/:Caller/:Operation/:Key",
		DefaultExpiry: cache.ExpireIn(24 * time.Hour),
	},
)

// RecordCache is the subset of the cache keyspace used by CachedRecordStore.
type RecordCache interface {
	Get(ctx context.Context, key model.IdempotencyCacheKey) (model.IdempotencyRecord, error)
	Set(ctx context.Context, key model.IdempotencyCacheKey, value model.IdempotencyRecord) error
}

// CachedRecordStore serves completed records from the replay cache and falls back to
// the durable store. The durable store stays the source of truth for writes.
type CachedRecordStore struct {
	next  pipeline.RecordStore
	cache RecordCache
}

var _ pipeline.RecordStore = (*CachedRecordStore)(nil)

func NewCachedRecordStore(next pipeline.RecordStore, recordCache RecordCache) *CachedRecordStore {
	return &CachedRecordStore{next: next, cache: recordCache}
}

func cacheKey(operationName, key string, callerID *uuid.UUID) model.IdempotencyCacheKey {
	caller := anonymousCaller
	if callerID != nil {
		caller = callerID.String()
	}
	return model.IdempotencyCacheKey{Caller: caller, Operation: operationName, Key: key}
}

func (s *CachedRecordStore) Find(ctx context.Context, operationName, key string, callerID *uuid.UUID) (*model.IdempotencyRecord, error) {
	k := cacheKey(operationName, key, callerID)

	cached, err := s.cache.Get(ctx, k)
	switch {
	case err == nil && cached.IsCompleted():
		rlog.Debug("idempotency record served from cache", "operation", operationName, "key", key)
		return &cached, nil
	case err != nil && !errors.Is(err, cache.Miss):
		rlog.Warn("failed to read idempotency cache", "operation", operationName, "key", key, "error", err)
	}

	record, err := s.next.Find(ctx, operationName, key, callerID)
	if err != nil || record == nil {
		return record, err
	}

	if record.IsCompleted() {
		s.store(ctx, k, record)
	}
	return record, nil
}

func (s *CachedRecordStore) CreatePending(ctx context.Context, operationName, key, requestHash string, callerID *uuid.UUID) (*model.IdempotencyRecord, error) {
	return s.next.CreatePending(ctx, operationName, key, requestHash, callerID)
}

func (s *CachedRecordStore) MarkCompleted(ctx context.Context, record *model.IdempotencyRecord, responsePayload []byte) error {
	return s.next.MarkCompleted(ctx, record, responsePayload)
}

func (s *CachedRecordStore) ReleasePending(ctx context.Context, record *model.IdempotencyRecord) error {
	return s.next.ReleasePending(ctx, record)
}

func (s *CachedRecordStore) store(ctx context.Context, k model.IdempotencyCacheKey, record *model.IdempotencyRecord) {
	if err := s.cache.Set(ctx, k, *record); err != nil {
		rlog.Warn("failed to cache idempotency record", "operation", k.Operation, "key", k.Key, "error", err)
	}
}
