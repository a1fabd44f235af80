package ticket

import (
	"context"
	"errors"

	"encore.dev/beta/errs"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"posapp/pos/model"
	"posapp/pos/store/pgtx"
	"posapp/pos/store/tickets"
)

// GetTicket returns a ticket with its lines and total.
func (b *business) GetTicket(ctx context.Context, id uuid.UUID) (*model.Ticket, error) {
	dbTicket, err := b.ticketRepo.GetTicket(ctx, pgtx.UUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "ticket not found"}
		}
		return nil, errs.WrapCode(err, errs.Internal, "failed to get ticket")
	}

	dbLines, err := b.ticketRepo.ListTicketLines(ctx, dbTicket.ID)
	if err != nil {
		return nil, errs.WrapCode(err, errs.Internal, "failed to get ticket lines")
	}

	result := convertDBTicketToModel(dbTicket)
	result.Lines = make([]model.TicketLine, 0, len(dbLines))
	for _, dbLine := range dbLines {
		line := convertDBLineToModel(dbLine)
		result.TotalCents += line.LineTotalCents
		result.Lines = append(result.Lines, line)
	}

	return result, nil
}

// ListTickets returns one page of tickets, newest first, and the total ticket count.
func (b *business) ListTickets(ctx context.Context, page model.Page) ([]*model.Ticket, int64, error) {
	dbTickets, err := b.ticketRepo.ListTickets(ctx, tickets.ListTicketsParams{
		Limit:  page.Limit(),
		Offset: page.Offset(),
	})
	if err != nil {
		return nil, 0, errs.WrapCode(err, errs.Internal, "failed to list tickets")
	}

	total, err := b.ticketRepo.CountTickets(ctx)
	if err != nil {
		return nil, 0, errs.WrapCode(err, errs.Internal, "failed to count tickets")
	}

	result := make([]*model.Ticket, 0, len(dbTickets))
	for _, dbTicket := range dbTickets {
		result = append(result, convertDBTicketToModel(dbTicket))
	}

	return result, total, nil
}

// CancelIfOpen cancels an idle ticket. It reports whether the ticket was cancelled.
func (b *business) CancelIfOpen(ctx context.Context, id uuid.UUID) (bool, error) {
	return b.stateMachine.TransitionToCancelled(ctx, id)
}
