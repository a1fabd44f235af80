package menuitems

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type MenuItem struct {
	ID         pgtype.UUID
	Name       string
	PriceCents int64
	CreatedAt  pgtype.Timestamptz
	UpdatedAt  pgtype.Timestamptz
}
