package pos

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"posapp/pos/model"
	"posapp/pos/pipeline"
)

type ListTicketsRequest struct {
	PageIndex int `query:"page_index" validate:"min=0"`
	PageSize  int `query:"page_size" validate:"min=0,max=100"`
}

type ListTicketsResponse struct {
	Tickets    []model.Ticket `json:"tickets"`
	TotalCount int64          `json:"total_count"`
	PageIndex  int            `json:"page_index"`
	PageSize   int            `json:"page_size"`
}

//encore:api auth path=/v1/tickets method=GET
func (s *Service) ListTickets(ctx context.Context, req *ListTicketsRequest) (*ListTicketsResponse, error) {
	page := model.NewPage(req.PageIndex, req.PageSize)

	resp, err := pipeline.Run(ctx, s.pipeline, listTicketsOp, page, s.listTickets)
	if err != nil {
		rlog.Error("failed to list tickets", "error", err)
		return nil, err
	}

	return resp, nil
}

func (s *Service) listTickets(ctx context.Context, page model.Page) (*ListTicketsResponse, error) {
	tickets, totalCount, err := s.tickets.ListTickets(ctx, page)
	if err != nil {
		return nil, err
	}

	response := &ListTicketsResponse{
		Tickets:    make([]model.Ticket, len(tickets)),
		TotalCount: totalCount,
		PageIndex:  page.Index,
		PageSize:   page.Size,
	}

	for i, ticket := range tickets {
		response.Tickets[i] = *ticket
	}

	return response, nil
}

// Validate implements validation for ListTicketsRequest
func (r *ListTicketsRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
