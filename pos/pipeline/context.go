package pipeline

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// IdempotencyContext holds the retry key and caller of one inbound operation.
// It is populated once by the transport boundary and read by the Idempotency Stage.
type IdempotencyContext struct {
	key         string
	callerID    *uuid.UUID
	initialized bool
}

// Set stores the trimmed key and caller. The first successful call wins; empty or
// whitespace keys are ignored.
func (c *IdempotencyContext) Set(key string, callerID *uuid.UUID) {
	if c.initialized {
		return
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return
	}

	c.key = key
	if callerID != nil {
		id := *callerID
		c.callerID = &id
	}
	c.initialized = true
}

func (c *IdempotencyContext) Enabled() bool {
	return c != nil && c.key != ""
}

func (c *IdempotencyContext) Key() string {
	if c == nil {
		return ""
	}
	return c.key
}

func (c *IdempotencyContext) CallerID() *uuid.UUID {
	if c == nil || c.callerID == nil {
		return nil
	}
	id := *c.callerID
	return &id
}

type idempotencyContextKey struct{}

// WithIdempotency attaches a fresh IdempotencyContext to ctx. An existing one is kept.
func WithIdempotency(ctx context.Context) (context.Context, *IdempotencyContext) {
	if existing := IdempotencyFromContext(ctx); existing != nil {
		return ctx, existing
	}
	ic := &IdempotencyContext{}
	return context.WithValue(ctx, idempotencyContextKey{}, ic), ic
}

// IdempotencyFromContext returns the IdempotencyContext of the current operation, or nil.
func IdempotencyFromContext(ctx context.Context) *IdempotencyContext {
	ic, _ := ctx.Value(idempotencyContextKey{}).(*IdempotencyContext)
	return ic
}
