package records

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyRecord struct {
	ID              pgtype.UUID
	CallerID        pgtype.UUID
	OperationName   string
	Key             string
	RequestHash     string
	ResponsePayload pgtype.Text
	CreatedAt       pgtype.Timestamptz
	CompletedAt     pgtype.Timestamptz
}
