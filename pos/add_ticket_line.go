package pos

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"github.com/google/uuid"

	"posapp/pos/model"
	"posapp/pos/pipeline"
)

type AddTicketLineRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required,uuid"`
	Qty        int32  `json:"qty" validate:"required,min=1"`
}

type TicketLineResponse struct {
	Line model.TicketLine `json:"line"`
}

// addLineCommand is the hashed payload of AddTicketLine. It carries the ticket id so a
// key reused against another ticket is a payload conflict.
type addLineCommand struct {
	TicketID   uuid.UUID `json:"ticket_id"`
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Qty        int32     `json:"qty"`
}

//encore:api auth path=/v1/tickets/:id/lines method=POST tag:idempotent
func (s *Service) AddTicketLine(ctx context.Context, id string, req *AddTicketLineRequest) (*TicketLineResponse, error) {
	ticketID, err := parseID(id, "ticket")
	if err != nil {
		return nil, err
	}
	menuItemID, err := parseID(req.MenuItemID, "menu item")
	if err != nil {
		return nil, err
	}

	cmd := addLineCommand{TicketID: ticketID, MenuItemID: menuItemID, Qty: req.Qty}
	resp, err := pipeline.Run(ctx, s.pipeline, addTicketLineOp, cmd, s.addTicketLine)
	if err != nil {
		rlog.Error("failed to add ticket line", "error", err, "ticket_id", ticketID)
		return nil, err
	}

	line := resp.Line
	runAsync("signal_line_added", func(ctx context.Context) error {
		return s.signalLineAdded(ctx, &line)
	})

	return resp, nil
}

func (s *Service) addTicketLine(ctx context.Context, cmd addLineCommand) (*TicketLineResponse, error) {
	line, err := s.tickets.AddLine(ctx, cmd.TicketID, cmd.MenuItemID, cmd.Qty)
	if err != nil {
		return nil, err
	}
	return &TicketLineResponse{Line: *line}, nil
}

// Validate implements validation for AddTicketLineRequest
func (r *AddTicketLineRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
