package records

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const recordColumns = `id, caller_id, operation_name, key, request_hash, response_payload, created_at, completed_at`

const findRecord = `
SELECT ` + recordColumns + ` FROM idempotency_records
WHERE operation_name = $1 AND key = $2 AND caller_id IS NOT DISTINCT FROM $3
`

type FindRecordParams struct {
	OperationName string
	Key           string
	CallerID      pgtype.UUID
}

func (q *Queries) FindRecord(ctx context.Context, arg FindRecordParams) (IdempotencyRecord, error) {
	row := q.conn(ctx).QueryRow(ctx, findRecord, arg.OperationName, arg.Key, arg.CallerID)
	var i IdempotencyRecord
	err := row.Scan(
		&i.ID,
		&i.CallerID,
		&i.OperationName,
		&i.Key,
		&i.RequestHash,
		&i.ResponsePayload,
		&i.CreatedAt,
		&i.CompletedAt,
	)
	return i, err
}

// Returns pgx.ErrNoRows when a record with the same (caller_id, operation_name, key) exists.
const insertPendingRecord = `
INSERT INTO idempotency_records (id, caller_id, operation_name, key, request_hash, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT DO NOTHING
RETURNING ` + recordColumns

type InsertPendingRecordParams struct {
	ID            pgtype.UUID
	CallerID      pgtype.UUID
	OperationName string
	Key           string
	RequestHash   string
	CreatedAt     pgtype.Timestamptz
}

func (q *Queries) InsertPendingRecord(ctx context.Context, arg InsertPendingRecordParams) (IdempotencyRecord, error) {
	row := q.conn(ctx).QueryRow(ctx, insertPendingRecord,
		arg.ID,
		arg.CallerID,
		arg.OperationName,
		arg.Key,
		arg.RequestHash,
		arg.CreatedAt,
	)
	var i IdempotencyRecord
	err := row.Scan(
		&i.ID,
		&i.CallerID,
		&i.OperationName,
		&i.Key,
		&i.RequestHash,
		&i.ResponsePayload,
		&i.CreatedAt,
		&i.CompletedAt,
	)
	return i, err
}

const completeRecord = `
UPDATE idempotency_records
SET response_payload = $2, completed_at = $3
WHERE id = $1 AND completed_at IS NULL
`

type CompleteRecordParams struct {
	ID              pgtype.UUID
	ResponsePayload pgtype.Text
	CompletedAt     pgtype.Timestamptz
}

func (q *Queries) CompleteRecord(ctx context.Context, arg CompleteRecordParams) (int64, error) {
	result, err := q.conn(ctx).Exec(ctx, completeRecord, arg.ID, arg.ResponsePayload, arg.CompletedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deletePendingRecord = `
DELETE FROM idempotency_records
WHERE id = $1 AND completed_at IS NULL
`

func (q *Queries) DeletePendingRecord(ctx context.Context, id pgtype.UUID) (int64, error) {
	result, err := q.conn(ctx).Exec(ctx, deletePendingRecord, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
