package pipeline

import "context"

// Order selects how the two stages nest around a handler.
type Order int

const (
	// IdempotencyOuter checks and records idempotency outside the handler's transaction.
	IdempotencyOuter Order = iota
	// TransactionOuter opens the transaction first, so idempotency records commit
	// atomically with the handler's effects.
	TransactionOuter
)

func (o Order) String() string {
	if o == TransactionOuter {
		return "transaction_outer"
	}
	return "idempotency_outer"
}

// Pipeline composes the cross-cutting stages every operation runs through.
// A nil stage is skipped.
type Pipeline struct {
	Idempotency *IdempotencyStage
	Transaction *TransactionStage
	Order       Order
}

func New(idempotency *IdempotencyStage, transaction *TransactionStage, order Order) *Pipeline {
	return &Pipeline{
		Idempotency: idempotency,
		Transaction: transaction,
		Order:       order,
	}
}

// Run executes handler for req through the configured stages.
func Run[Req, Resp any](ctx context.Context, p *Pipeline, op Operation, req Req, handler Handler[Req, Resp]) (Resp, error) {
	invoke := func(ctx context.Context) (Resp, error) {
		return handler(ctx, req)
	}
	if p == nil {
		return invoke(ctx)
	}

	if p.Order == TransactionOuter {
		return Transactional(ctx, p.Transaction, op, func(ctx context.Context) (Resp, error) {
			return Idempotent(ctx, p.Idempotency, op, req, invoke)
		})
	}

	return Idempotent(ctx, p.Idempotency, op, req, func(ctx context.Context) (Resp, error) {
		return Transactional(ctx, p.Transaction, op, invoke)
	})
}
