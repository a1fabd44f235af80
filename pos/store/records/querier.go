package records

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=querier.go -destination=../../mocks/store/record_store/querier.go -package=record_store

type Querier interface {
	FindRecord(ctx context.Context, arg FindRecordParams) (IdempotencyRecord, error)
	InsertPendingRecord(ctx context.Context, arg InsertPendingRecordParams) (IdempotencyRecord, error)
	CompleteRecord(ctx context.Context, arg CompleteRecordParams) (int64, error)
	DeletePendingRecord(ctx context.Context, id pgtype.UUID) (int64, error)
}

var _ Querier = (*Queries)(nil)
