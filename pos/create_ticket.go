package pos

import (
	"context"

	"encore.dev/rlog"

	"posapp/pos/model"
	"posapp/pos/pipeline"
)

type TicketResponse struct {
	Ticket model.Ticket `json:"ticket"`
}

// createTicketCommand has no fields: every CreateTicket of a caller hashes alike, so a
// reused key always replays.
type createTicketCommand struct{}

//encore:api auth path=/v1/tickets method=POST tag:idempotent
func (s *Service) CreateTicket(ctx context.Context) (*TicketResponse, error) {
	resp, err := pipeline.Run(ctx, s.pipeline, createTicketOp, createTicketCommand{}, s.createTicket)
	if err != nil {
		rlog.Error("failed to create ticket", "error", err)
		return nil, err
	}

	ticketID := resp.Ticket.ID
	runAsync("start_ticket_workflow", func(ctx context.Context) error {
		return s.startTicketWorkflow(ctx, ticketID)
	})

	return resp, nil
}

func (s *Service) createTicket(ctx context.Context, _ createTicketCommand) (*TicketResponse, error) {
	ticket, err := s.tickets.CreateTicket(ctx)
	if err != nil {
		return nil, err
	}
	return &TicketResponse{Ticket: *ticket}, nil
}
