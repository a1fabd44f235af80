package pos

import (
	"context"

	"encore.dev/rlog"
	"github.com/google/uuid"

	"posapp/pos/pipeline"
)

//encore:api auth path=/v1/tickets/:id method=GET
func (s *Service) GetTicket(ctx context.Context, id string) (*TicketResponse, error) {
	ticketID, err := parseID(id, "ticket")
	if err != nil {
		return nil, err
	}

	resp, err := pipeline.Run(ctx, s.pipeline, getTicketOp, ticketID, s.getTicket)
	if err != nil {
		rlog.Error("failed to get ticket", "error", err, "ticket_id", ticketID)
		return nil, err
	}

	return resp, nil
}

func (s *Service) getTicket(ctx context.Context, id uuid.UUID) (*TicketResponse, error) {
	ticket, err := s.tickets.GetTicket(ctx, id)
	if err != nil {
		return nil, err
	}
	return &TicketResponse{Ticket: *ticket}, nil
}
