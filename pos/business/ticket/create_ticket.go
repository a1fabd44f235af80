package ticket

import (
	"context"

	"encore.dev/beta/errs"

	"posapp/pos/model"
	"posapp/pos/store/pgtx"
	"posapp/pos/store/tickets"
)

// CreateTicket opens a new, empty ticket.
func (b *business) CreateTicket(ctx context.Context) (*model.Ticket, error) {
	dbTicket, err := b.ticketRepo.CreateTicket(ctx, tickets.CreateTicketParams{
		ID:     pgtx.UUID(b.newID()),
		Status: string(model.TicketStatusOpen),
	})
	if err != nil {
		return nil, errs.WrapCode(err, errs.Internal, "failed to create ticket")
	}

	result := convertDBTicketToModel(dbTicket)
	result.Lines = []model.TicketLine{}
	return result, nil
}
