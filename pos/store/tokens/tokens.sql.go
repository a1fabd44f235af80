package tokens

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=tokens.sql.go -destination=../../mocks/store/token_store/querier.go -package=token_store

type Querier interface {
	GetCallerByTokenHash(ctx context.Context, tokenHash string) (GetCallerByTokenHashRow, error)
}

var _ Querier = (*Queries)(nil)

const getCallerByTokenHash = `
SELECT caller_id, role FROM api_tokens
WHERE token_hash = $1 AND revoked_at IS NULL
`

type GetCallerByTokenHashRow struct {
	CallerID pgtype.UUID
	Role     string
}

func (q *Queries) GetCallerByTokenHash(ctx context.Context, tokenHash string) (GetCallerByTokenHashRow, error) {
	row := q.conn(ctx).QueryRow(ctx, getCallerByTokenHash, tokenHash)
	var i GetCallerByTokenHashRow
	err := row.Scan(&i.CallerID, &i.Role)
	return i, err
}
