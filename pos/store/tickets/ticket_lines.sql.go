package tickets

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

// A line for the same menu item at the same unit price accumulates quantity.
const upsertTicketLine = `
INSERT INTO ticket_lines (id, ticket_id, menu_item_id, qty, unit_price_cents)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (ticket_id, menu_item_id, unit_price_cents)
DO UPDATE SET qty = ticket_lines.qty + EXCLUDED.qty
RETURNING id, ticket_id, menu_item_id, qty, unit_price_cents, created_at
`

type UpsertTicketLineParams struct {
	ID             pgtype.UUID
	TicketID       pgtype.UUID
	MenuItemID     pgtype.UUID
	Qty            int32
	UnitPriceCents int64
}

func (q *Queries) UpsertTicketLine(ctx context.Context, arg UpsertTicketLineParams) (TicketLine, error) {
	row := q.conn(ctx).QueryRow(ctx, upsertTicketLine,
		arg.ID,
		arg.TicketID,
		arg.MenuItemID,
		arg.Qty,
		arg.UnitPriceCents,
	)
	var i TicketLine
	err := row.Scan(
		&i.ID,
		&i.TicketID,
		&i.MenuItemID,
		&i.Qty,
		&i.UnitPriceCents,
		&i.CreatedAt,
	)
	return i, err
}

const listTicketLines = `
SELECT l.id, l.ticket_id, l.menu_item_id, l.qty, l.unit_price_cents, l.created_at, m.name
FROM ticket_lines l
LEFT JOIN menu_items m ON m.id = l.menu_item_id
WHERE l.ticket_id = $1
ORDER BY l.created_at, l.id
`

func (q *Queries) ListTicketLines(ctx context.Context, ticketID pgtype.UUID) ([]TicketLine, error) {
	rows, err := q.conn(ctx).Query(ctx, listTicketLines, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []TicketLine
	for rows.Next() {
		var i TicketLine
		if err := rows.Scan(
			&i.ID,
			&i.TicketID,
			&i.MenuItemID,
			&i.Qty,
			&i.UnitPriceCents,
			&i.CreatedAt,
			&i.ItemName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getTicketTotal = `
SELECT COALESCE(SUM(qty::bigint * unit_price_cents), 0)::bigint
FROM ticket_lines
WHERE ticket_id = $1
`

func (q *Queries) GetTicketTotal(ctx context.Context, ticketID pgtype.UUID) (int64, error) {
	row := q.conn(ctx).QueryRow(ctx, getTicketTotal, ticketID)
	var total int64
	err := row.Scan(&total)
	return total, err
}
