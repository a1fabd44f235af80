package pos

import (
	"time"

	"encore.dev/config"

	"posapp/pos/pipeline"
)

type Config struct {
	// IdempotencyHeader is the request header carrying the retry key.
	IdempotencyHeader string
	// ReleasePendingOnFailure deletes the pending record when a keyed command fails,
	// so the same key can be retried. Off by default.
	ReleasePendingOnFailure bool
	// TransactionOuter runs the record writes inside the command transaction.
	TransactionOuter bool
	ReplayCacheEnabled bool

	TxMaxAttempts      int
	TxInitialBackoffMs int
	TxMaxBackoffMs     int

	TicketIdleTimeoutMinutes int

	TemporalHostPort  string
	TemporalNamespace string
	TaskQueue         string
}

var cfg = config.Load[*Config]()

func (c *Config) order() pipeline.Order {
	if c.TransactionOuter {
		return pipeline.TransactionOuter
	}
	return pipeline.IdempotencyOuter
}

func (c *Config) txMaxAttempts() uint {
	if c.TxMaxAttempts <= 0 {
		return 3
	}
	return uint(c.TxMaxAttempts)
}

func (c *Config) txBackoff() (time.Duration, time.Duration) {
	initial := time.Duration(c.TxInitialBackoffMs) * time.Millisecond
	max := time.Duration(c.TxMaxBackoffMs) * time.Millisecond
	if initial <= 0 {
		initial = 50 * time.Millisecond
	}
	if max < initial {
		max = initial
	}
	return initial, max
}

func (c *Config) ticketIdleTimeout() time.Duration {
	if c.TicketIdleTimeoutMinutes <= 0 {
		return 2 * time.Hour
	}
	return time.Duration(c.TicketIdleTimeoutMinutes) * time.Minute
}
