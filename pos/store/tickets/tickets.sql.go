package tickets

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createTicket = `
INSERT INTO tickets (id, status)
VALUES ($1, $2)
RETURNING id, status, created_at, updated_at
`

type CreateTicketParams struct {
	ID     pgtype.UUID
	Status string
}

func (q *Queries) CreateTicket(ctx context.Context, arg CreateTicketParams) (Ticket, error) {
	row := q.conn(ctx).QueryRow(ctx, createTicket, arg.ID, arg.Status)
	var i Ticket
	err := row.Scan(&i.ID, &i.Status, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getTicket = `
SELECT id, status, created_at, updated_at FROM tickets
WHERE id = $1
`

func (q *Queries) GetTicket(ctx context.Context, id pgtype.UUID) (Ticket, error) {
	row := q.conn(ctx).QueryRow(ctx, getTicket, id)
	var i Ticket
	err := row.Scan(&i.ID, &i.Status, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getTicketForUpdate = `
SELECT id, status, created_at, updated_at FROM tickets
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetTicketForUpdate(ctx context.Context, id pgtype.UUID) (Ticket, error) {
	row := q.conn(ctx).QueryRow(ctx, getTicketForUpdate, id)
	var i Ticket
	err := row.Scan(&i.ID, &i.Status, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const listTickets = `
SELECT id, status, created_at, updated_at FROM tickets
ORDER BY created_at DESC, id
LIMIT $1 OFFSET $2
`

type ListTicketsParams struct {
	Limit  int32
	Offset int32
}

func (q *Queries) ListTickets(ctx context.Context, arg ListTicketsParams) ([]Ticket, error) {
	rows, err := q.conn(ctx).Query(ctx, listTickets, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Ticket
	for rows.Next() {
		var i Ticket
		if err := rows.Scan(&i.ID, &i.Status, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countTickets = `
SELECT count(*) FROM tickets
`

func (q *Queries) CountTickets(ctx context.Context) (int64, error) {
	row := q.conn(ctx).QueryRow(ctx, countTickets)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const updateTicketStatus = `
UPDATE tickets
SET status = $2, updated_at = now()
WHERE id = $1
RETURNING id, status, created_at, updated_at
`

type UpdateTicketStatusParams struct {
	ID     pgtype.UUID
	Status string
}

func (q *Queries) UpdateTicketStatus(ctx context.Context, arg UpdateTicketStatusParams) (Ticket, error) {
	row := q.conn(ctx).QueryRow(ctx, updateTicketStatus, arg.ID, arg.Status)
	var i Ticket
	err := row.Scan(&i.ID, &i.Status, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const cancelTicketIfOpen = `
UPDATE tickets
SET status = 'cancelled', updated_at = now()
WHERE id = $1 AND status = 'open'
`

func (q *Queries) CancelTicketIfOpen(ctx context.Context, id pgtype.UUID) (int64, error) {
	result, err := q.conn(ctx).Exec(ctx, cancelTicketIfOpen, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
