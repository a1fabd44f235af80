package tickets

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=querier.go -destination=../../mocks/store/ticket_store/querier.go -package=ticket_store

type Querier interface {
	CreateTicket(ctx context.Context, arg CreateTicketParams) (Ticket, error)
	GetTicket(ctx context.Context, id pgtype.UUID) (Ticket, error)
	GetTicketForUpdate(ctx context.Context, id pgtype.UUID) (Ticket, error)
	ListTickets(ctx context.Context, arg ListTicketsParams) ([]Ticket, error)
	CountTickets(ctx context.Context) (int64, error)
	UpdateTicketStatus(ctx context.Context, arg UpdateTicketStatusParams) (Ticket, error)
	CancelTicketIfOpen(ctx context.Context, id pgtype.UUID) (int64, error)
	UpsertTicketLine(ctx context.Context, arg UpsertTicketLineParams) (TicketLine, error)
	ListTicketLines(ctx context.Context, ticketID pgtype.UUID) ([]TicketLine, error)
	GetTicketTotal(ctx context.Context, ticketID pgtype.UUID) (int64, error)
}

var _ Querier = (*Queries)(nil)
