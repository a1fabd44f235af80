package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// IdempotencyRecord is the durable trace of one idempotent command attempt.
// A record with a nil ResponsePayload is pending.
type IdempotencyRecord struct {
	ID              uuid.UUID       `json:"id"`
	CallerID        *uuid.UUID      `json:"caller_id,omitempty"`
	OperationName   string          `json:"operation_name"`
	Key             string          `json:"key"`
	RequestHash     string          `json:"request_hash"`
	ResponsePayload json.RawMessage `json:"response_payload,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
}

func (r *IdempotencyRecord) IsCompleted() bool {
	return r.ResponsePayload != nil
}

// IdempotencyCacheKey addresses a completed record in the replay cache.
type IdempotencyCacheKey struct {
	Caller    string
	Operation string
	Key       string
}
