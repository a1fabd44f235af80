package pipeline

import "encore.dev/metrics"

const (
	outcomeBypass     = "bypass"
	outcomeExecuted   = "executed"
	outcomeReplayed   = "replayed"
	outcomeConflict   = "conflict"
	outcomeInProgress = "in_progress"
	outcomeFailed     = "failed"
)

type OutcomeLabels struct {
	Operation string
	Outcome   string
}

var IdempotencyOutcomes = metrics.NewCounterGroup[OutcomeLabels, uint64]("pos_idempotency_outcomes", metrics.CounterConfig{})

type TransactionLabels struct {
	Operation string
	Result    string
}

var TransactionAttempts = metrics.NewCounterGroup[TransactionLabels, uint64]("pos_transaction_attempts", metrics.CounterConfig{})

func recordOutcome(operation, outcome string) {
	IdempotencyOutcomes.With(OutcomeLabels{Operation: operation, Outcome: outcome}).Increment()
}
