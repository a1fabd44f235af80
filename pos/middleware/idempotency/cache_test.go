package idempotency

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"encore.dev/storage/cache"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"posapp/pos/mocks/pipeline/idempotency_store"
	"posapp/pos/model"
)

type fakeRecordCache struct {
	mu      sync.Mutex
	entries map[model.IdempotencyCacheKey]model.IdempotencyRecord
	getErr  error
	sets    int
}

func newFakeRecordCache() *fakeRecordCache {
	return &fakeRecordCache{entries: make(map[model.IdempotencyCacheKey]model.IdempotencyRecord)}
}

func (c *fakeRecordCache) Get(ctx context.Context, key model.IdempotencyCacheKey) (model.IdempotencyRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return model.IdempotencyRecord{}, c.getErr
	}
	record, ok := c.entries[key]
	if !ok {
		return model.IdempotencyRecord{}, cache.Miss
	}
	return record, nil
}

func (c *fakeRecordCache) Set(ctx context.Context, key model.IdempotencyCacheKey, value model.IdempotencyRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.entries[key] = value
	return nil
}

func TestCachedRecordStoreFind(t *testing.T) {
	caller := uuid.New()
	completedAt := time.Now()
	completed := &model.IdempotencyRecord{
		ID:              uuid.New(),
		CallerID:        &caller,
		OperationName:   "CreateTicketCommand",
		Key:             "k-1",
		RequestHash:     "abc",
		ResponsePayload: json.RawMessage(`{"id":"t-1"}`),
		CompletedAt:     &completedAt,
	}
	pending := &model.IdempotencyRecord{
		ID:            uuid.New(),
		CallerID:      &caller,
		OperationName: "CreateTicketCommand",
		Key:           "k-1",
		RequestHash:   "abc",
	}

	testCases := []struct {
		name           string
		cached         *model.IdempotencyRecord
		getErr         error
		storeRecord    *model.IdempotencyRecord
		expectStore    bool
		expected       *model.IdempotencyRecord
		expectedCached bool
	}{
		{
			name:           "miss_reads_store_and_caches_completed",
			storeRecord:    completed,
			expectStore:    true,
			expected:       completed,
			expectedCached: true,
		},
		{
			name:        "miss_does_not_cache_pending",
			storeRecord: pending,
			expectStore: true,
			expected:    pending,
		},
		{
			name:        "miss_and_absent",
			storeRecord: nil,
			expectStore: true,
			expected:    nil,
		},
		{
			name:           "hit_skips_store",
			cached:         completed,
			expected:       completed,
			expectedCached: true,
		},
		{
			name:           "cache_failure_falls_back_to_store",
			getErr:         assert.AnError,
			storeRecord:    completed,
			expectStore:    true,
			expected:       completed,
			expectedCached: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := idempotency_store.NewMockRecordStore(ctrl)
			recordCache := newFakeRecordCache()
			recordCache.getErr = tc.getErr
			key := cacheKey("CreateTicketCommand", "k-1", &caller)
			if tc.cached != nil {
				recordCache.entries[key] = *tc.cached
			}
			if tc.expectStore {
				mockStore.EXPECT().Find(gomock.Any(), "CreateTicketCommand", "k-1", &caller).Return(tc.storeRecord, nil)
			}

			store := NewCachedRecordStore(mockStore, recordCache)
			record, err := store.Find(context.Background(), "CreateTicketCommand", "k-1", &caller)

			require.NoError(t, err)
			if tc.expected == nil {
				assert.Nil(t, record)
			} else {
				require.NotNil(t, record)
				assert.Equal(t, tc.expected.ID, record.ID)
				assert.Equal(t, tc.expected.IsCompleted(), record.IsCompleted())
			}

			_, cached := recordCache.entries[key]
			assert.Equal(t, tc.expectedCached, cached)
		})
	}
}

func TestCachedRecordStoreDelegatesWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := idempotency_store.NewMockRecordStore(ctrl)
	recordCache := newFakeRecordCache()
	store := NewCachedRecordStore(mockStore, recordCache)
	record := &model.IdempotencyRecord{ID: uuid.New(), OperationName: "PayTicketCashCommand", Key: "k"}

	mockStore.EXPECT().CreatePending(gomock.Any(), "PayTicketCashCommand", "k", "hash", nil).Return(record, nil)
	mockStore.EXPECT().MarkCompleted(gomock.Any(), record, []byte(`{}`)).Return(nil)
	mockStore.EXPECT().ReleasePending(gomock.Any(), record).Return(nil)

	created, err := store.CreatePending(context.Background(), "PayTicketCashCommand", "k", "hash", nil)
	require.NoError(t, err)
	assert.Same(t, record, created)
	require.NoError(t, store.MarkCompleted(context.Background(), record, []byte(`{}`)))
	require.NoError(t, store.ReleasePending(context.Background(), record))

	assert.Equal(t, 0, recordCache.sets)
}

func TestCacheKey(t *testing.T) {
	caller := uuid.MustParse("6f1c2a8e-3f4b-4c1d-9a2e-7b8c9d0e1f2a")

	assert.Equal(t, model.IdempotencyCacheKey{Caller: "anonymous", Operation: "CreateTicketCommand", Key: "k"}, cacheKey("CreateTicketCommand", "k", nil))
	assert.Equal(t, model.IdempotencyCacheKey{Caller: caller.String(), Operation: "CreateTicketCommand", Key: "k"}, cacheKey("CreateTicketCommand", "k", &caller))
}
