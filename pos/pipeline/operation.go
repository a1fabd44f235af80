package pipeline

import (
	"context"
	"strings"
)

// Operation describes a command or query run through the pipeline.
type Operation struct {
	// Name is the logical command name. It is persisted with idempotency records.
	Name string
	// Idempotent marks operations that may be replayed from a stored response.
	Idempotent bool
}

// IsQuery reports whether the operation is read-only by naming convention.
func (o Operation) IsQuery() bool {
	return strings.HasSuffix(o.Name, "Query")
}

// Command returns a transactional operation that does not take part in idempotency.
func Command(name string) Operation {
	return Operation{Name: name}
}

// IdempotentCommand returns a transactional operation that honours retry keys.
func IdempotentCommand(name string) Operation {
	return Operation{Name: name, Idempotent: true}
}

// Query returns a read-only operation. name should end in "Query".
func Query(name string) Operation {
	return Operation{Name: name}
}

// Handler is the opaque operation the pipeline wraps.
type Handler[Req, Resp any] func(ctx context.Context, req Req) (Resp, error)
