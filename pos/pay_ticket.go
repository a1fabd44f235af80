package pos

import (
	"context"

	"encore.dev/rlog"
	"github.com/google/uuid"

	"posapp/pos/model"
	"posapp/pos/pipeline"
)

type PayTicketWithGatewayRequest struct {
	// ShouldSucceed drives the mock gateway; nil means approve.
	ShouldSucceed *bool `json:"should_succeed,omitempty"`
}

type PaymentResponse struct {
	Payment model.TicketPayment `json:"payment"`
}

type payCashCommand struct {
	TicketID uuid.UUID `json:"ticket_id"`
}

type payWithGatewayCommand struct {
	TicketID      uuid.UUID `json:"ticket_id"`
	ShouldSucceed bool      `json:"should_succeed"`
}

//encore:api auth path=/v1/tickets/:id/pay/cash method=POST tag:idempotent
func (s *Service) PayTicketCash(ctx context.Context, id string) (*PaymentResponse, error) {
	ticketID, err := parseID(id, "ticket")
	if err != nil {
		return nil, err
	}

	resp, err := pipeline.Run(ctx, s.pipeline, payCashOp, payCashCommand{TicketID: ticketID}, s.payCash)
	if err != nil {
		rlog.Error("failed to pay ticket in cash", "error", err, "ticket_id", ticketID)
		return nil, err
	}

	s.notifyPaid(resp)
	return resp, nil
}

//encore:api auth path=/v1/tickets/:id/pay/gateway method=POST tag:idempotent
func (s *Service) PayTicketWithGateway(ctx context.Context, id string, req *PayTicketWithGatewayRequest) (*PaymentResponse, error) {
	ticketID, err := parseID(id, "ticket")
	if err != nil {
		return nil, err
	}

	cmd := payWithGatewayCommand{TicketID: ticketID, ShouldSucceed: true}
	if req.ShouldSucceed != nil {
		cmd.ShouldSucceed = *req.ShouldSucceed
	}

	resp, err := pipeline.Run(ctx, s.pipeline, payWithGatewayOp, cmd, s.payWithGateway)
	if err != nil {
		rlog.Error("failed to pay ticket with gateway", "error", err, "ticket_id", ticketID)
		return nil, err
	}

	s.notifyPaid(resp)
	return resp, nil
}

func (s *Service) payCash(ctx context.Context, cmd payCashCommand) (*PaymentResponse, error) {
	payment, err := s.tickets.PayCash(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	return &PaymentResponse{Payment: *payment}, nil
}

func (s *Service) payWithGateway(ctx context.Context, cmd payWithGatewayCommand) (*PaymentResponse, error) {
	payment, err := s.tickets.PayWithGateway(ctx, cmd.TicketID, cmd.ShouldSucceed)
	if err != nil {
		return nil, err
	}
	return &PaymentResponse{Payment: *payment}, nil
}

func (s *Service) notifyPaid(resp *PaymentResponse) {
	payment := resp.Payment
	runAsync("signal_ticket_paid", func(ctx context.Context) error {
		return s.signalTicketPaid(ctx, &payment)
	})
}
