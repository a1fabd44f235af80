package records

import (
	"context"

	"posapp/pos/store/pgtx"
)

func New(db pgtx.DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db pgtx.DBTX
}

func (q *Queries) conn(ctx context.Context) pgtx.DBTX {
	return pgtx.Conn(ctx, q.db)
}
