package pos

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"github.com/google/uuid"

	"posapp/pos/model"
	"posapp/pos/pipeline"
)

type MenuItemRequest struct {
	Name       string `json:"name" validate:"required,max=200"`
	PriceCents int64  `json:"price_cents" validate:"required,min=1"`
}

type MenuItemResponse struct {
	MenuItem model.MenuItem `json:"menu_item"`
}

type updateMenuItemCommand struct {
	ID         uuid.UUID
	Name       string
	PriceCents int64
}

//encore:api auth path=/v1/menu method=POST
func (s *Service) CreateMenuItem(ctx context.Context, req *MenuItemRequest) (*MenuItemResponse, error) {
	if err := requireAdmin(); err != nil {
		return nil, err
	}

	resp, err := pipeline.Run(ctx, s.pipeline, createMenuItemOp, req, s.createMenuItem)
	if err != nil {
		rlog.Error("failed to create menu item", "error", err)
		return nil, err
	}

	return resp, nil
}

//encore:api auth path=/v1/menu/:id method=PUT
func (s *Service) UpdateMenuItem(ctx context.Context, id string, req *MenuItemRequest) (*MenuItemResponse, error) {
	if err := requireAdmin(); err != nil {
		return nil, err
	}
	itemID, err := parseID(id, "menu item")
	if err != nil {
		return nil, err
	}

	cmd := updateMenuItemCommand{ID: itemID, Name: req.Name, PriceCents: req.PriceCents}
	resp, err := pipeline.Run(ctx, s.pipeline, updateMenuItemOp, cmd, s.updateMenuItem)
	if err != nil {
		rlog.Error("failed to update menu item", "error", err, "menu_item_id", itemID)
		return nil, err
	}

	return resp, nil
}

//encore:api auth path=/v1/menu/:id method=DELETE
func (s *Service) DeleteMenuItem(ctx context.Context, id string) error {
	if err := requireAdmin(); err != nil {
		return err
	}
	itemID, err := parseID(id, "menu item")
	if err != nil {
		return err
	}

	_, err = pipeline.Run(ctx, s.pipeline, deleteMenuItemOp, itemID, s.deleteMenuItem)
	if err != nil {
		rlog.Error("failed to delete menu item", "error", err, "menu_item_id", itemID)
		return err
	}

	return nil
}

func (s *Service) createMenuItem(ctx context.Context, req *MenuItemRequest) (*MenuItemResponse, error) {
	item, err := s.menu.CreateMenuItem(ctx, req.Name, req.PriceCents)
	if err != nil {
		return nil, err
	}
	return &MenuItemResponse{MenuItem: *item}, nil
}

func (s *Service) updateMenuItem(ctx context.Context, cmd updateMenuItemCommand) (*MenuItemResponse, error) {
	item, err := s.menu.UpdateMenuItem(ctx, cmd.ID, cmd.Name, cmd.PriceCents)
	if err != nil {
		return nil, err
	}
	return &MenuItemResponse{MenuItem: *item}, nil
}

func (s *Service) deleteMenuItem(ctx context.Context, id uuid.UUID) (struct{}, error) {
	return struct{}{}, s.menu.DeleteMenuItem(ctx, id)
}

// Validate implements validation for MenuItemRequest
func (r *MenuItemRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
