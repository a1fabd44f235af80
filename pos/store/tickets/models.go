package tickets

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Ticket struct {
	ID        pgtype.UUID
	Status    string
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type TicketLine struct {
	ID             pgtype.UUID
	TicketID       pgtype.UUID
	MenuItemID     pgtype.UUID
	Qty            int32
	UnitPriceCents int64
	CreatedAt      pgtype.Timestamptz
	ItemName       pgtype.Text
}
