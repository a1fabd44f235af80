package pos

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"posapp/pos/model"
	"posapp/pos/pipeline"
)

type ListMenuItemsRequest struct {
	Query     string `query:"q" validate:"max=200"`
	PageIndex int    `query:"page_index" validate:"min=0"`
	PageSize  int    `query:"page_size" validate:"min=0,max=100"`
}

type ListMenuItemsResponse struct {
	MenuItems  []model.MenuItem `json:"menu_items"`
	TotalCount int64            `json:"total_count"`
	PageIndex  int              `json:"page_index"`
	PageSize   int              `json:"page_size"`
}

type listMenuItemsQuery struct {
	Query string
	Page  model.Page
}

//encore:api auth path=/v1/menu method=GET
func (s *Service) ListMenuItems(ctx context.Context, req *ListMenuItemsRequest) (*ListMenuItemsResponse, error) {
	query := listMenuItemsQuery{Query: req.Query, Page: model.NewPage(req.PageIndex, req.PageSize)}

	resp, err := pipeline.Run(ctx, s.pipeline, listMenuItemsOp, query, s.listMenuItems)
	if err != nil {
		rlog.Error("failed to list menu items", "error", err)
		return nil, err
	}

	return resp, nil
}

func (s *Service) listMenuItems(ctx context.Context, q listMenuItemsQuery) (*ListMenuItemsResponse, error) {
	items, totalCount, err := s.menu.ListMenuItems(ctx, q.Query, q.Page)
	if err != nil {
		return nil, err
	}

	response := &ListMenuItemsResponse{
		MenuItems:  make([]model.MenuItem, len(items)),
		TotalCount: totalCount,
		PageIndex:  q.Page.Index,
		PageSize:   q.Page.Size,
	}

	for i, item := range items {
		response.MenuItems[i] = *item
	}

	return response, nil
}

// Validate implements validation for ListMenuItemsRequest
func (r *ListMenuItemsRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
