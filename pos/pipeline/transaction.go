package pipeline

import (
	"context"
	"errors"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"github.com/cenkalti/backoff/v5"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"posapp/pos/store/pgtx"
)

// TxBeginner is satisfied by *pgxpool.Pool.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TransactionStage runs a command inside one database transaction that its handler
// and the stores it calls share through the context.
type TransactionStage struct {
	db             TxBeginner
	maxAttempts    uint
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

type TransactionOption func(*TransactionStage)

func WithMaxAttempts(n uint) TransactionOption {
	return func(s *TransactionStage) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

func WithBackoff(initial, max time.Duration) TransactionOption {
	return func(s *TransactionStage) {
		if initial > 0 {
			s.initialBackoff = initial
		}
		if max > 0 {
			s.maxBackoff = max
		}
	}
}

func NewTransactionStage(db TxBeginner, opts ...TransactionOption) *TransactionStage {
	s := &TransactionStage{
		db:             db,
		maxAttempts:    3,
		initialBackoff: 50 * time.Millisecond,
		maxBackoff:     time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *TransactionStage) newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.initialBackoff
	b.MaxInterval = s.maxBackoff
	return b
}

// Transactional runs next in a transaction and commits it when next succeeds.
// Queries pass straight through, as does any call made while a transaction is already
// bound to ctx. Transient connection and serialization failures restart the whole
// begin/invoke/commit sequence; errors returned by next are otherwise final.
func Transactional[Resp any](ctx context.Context, s *TransactionStage, op Operation, next func(context.Context) (Resp, error)) (Resp, error) {
	if s == nil || op.IsQuery() {
		return next(ctx)
	}
	if _, ok := pgtx.TxFromContext(ctx); ok {
		return next(ctx)
	}

	attempt := 0
	resp, err := backoff.Retry(ctx, func() (Resp, error) {
		attempt++
		return runAttempt(ctx, s, op, attempt, next)
	}, backoff.WithBackOff(s.newBackOff()), backoff.WithMaxTries(s.maxAttempts))
	if err != nil {
		if IsTransient(err) {
			rlog.Error("transaction failed after retries", "operation", op.Name, "attempts", attempt, "error", err)
			return resp, errs.WrapCode(err, errs.Unavailable, "database temporarily unavailable, retry later")
		}
		return resp, err
	}
	return resp, nil
}

func runAttempt[Resp any](ctx context.Context, s *TransactionStage, op Operation, attempt int, next func(context.Context) (Resp, error)) (Resp, error) {
	var zero Resp

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return zero, classify(op, attempt, err)
	}
	defer tx.Rollback(ctx)

	resp, err := next(pgtx.ContextWithTx(ctx, tx))
	if err != nil {
		return zero, classify(op, attempt, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return zero, classify(op, attempt, err)
	}

	TransactionAttempts.With(TransactionLabels{Operation: op.Name, Result: "committed"}).Increment()
	return resp, nil
}

// classify marks everything but transient database failures as permanent so the
// retry loop only repeats work that never reached a commit.
func classify(op Operation, attempt int, err error) error {
	if IsTransient(err) {
		TransactionAttempts.With(TransactionLabels{Operation: op.Name, Result: "retried"}).Increment()
		rlog.Warn("transient database failure, retrying transaction", "operation", op.Name, "attempt", attempt, "error", err)
		return err
	}
	TransactionAttempts.With(TransactionLabels{Operation: op.Name, Result: "rolled_back"}).Increment()
	return backoff.Permanent(err)
}

// IsTransient reports whether err is a connectivity or concurrency failure worth retrying.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected,
			pgerrcode.AdminShutdown, pgerrcode.CrashShutdown, pgerrcode.CannotConnectNow:
			return true
		}
		return pgerrcode.IsConnectionException(pgErr.Code)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	return pgconn.SafeToRetry(err)
}
