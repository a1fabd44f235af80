package menu

import (
	"context"
	"errors"
	"strings"

	"encore.dev/beta/errs"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"posapp/pos/model"
	"posapp/pos/store/menuitems"
	"posapp/pos/store/pgtx"
)

//go:generate mockgen -source=business.go -destination=../../mocks/business/menu_business/business.go -package=menu_business

type Business interface {
	CreateMenuItem(ctx context.Context, name string, priceCents int64) (*model.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id uuid.UUID, name string, priceCents int64) (*model.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id uuid.UUID) error
	ListMenuItems(ctx context.Context, query string, page model.Page) ([]*model.MenuItem, int64, error)
}

type business struct {
	menuRepo menuitems.Querier
	newID    func() uuid.UUID
}

func NewMenuBusiness(menuRepo menuitems.Querier) Business {
	return &business{menuRepo: menuRepo, newID: uuid.New}
}

func validateMenuItem(name string, priceCents int64) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: "name is required"}
	}
	if priceCents <= 0 {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: "price must be greater than zero"}
	}
	return name, nil
}

// CreateMenuItem adds an item to the menu.
func (b *business) CreateMenuItem(ctx context.Context, name string, priceCents int64) (*model.MenuItem, error) {
	name, err := validateMenuItem(name, priceCents)
	if err != nil {
		return nil, err
	}

	dbItem, err := b.menuRepo.CreateMenuItem(ctx, menuitems.CreateMenuItemParams{
		ID:         pgtx.UUID(b.newID()),
		Name:       name,
		PriceCents: priceCents,
	})
	if err != nil {
		return nil, errs.WrapCode(err, errs.Internal, "failed to create menu item")
	}

	return convertDBMenuItemToModel(dbItem), nil
}

// UpdateMenuItem renames or reprices an item. Existing ticket lines keep the price
// they were added at.
func (b *business) UpdateMenuItem(ctx context.Context, id uuid.UUID, name string, priceCents int64) (*model.MenuItem, error) {
	name, err := validateMenuItem(name, priceCents)
	if err != nil {
		return nil, err
	}

	dbItem, err := b.menuRepo.UpdateMenuItem(ctx, menuitems.UpdateMenuItemParams{
		ID:         pgtx.UUID(id),
		Name:       name,
		PriceCents: priceCents,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "menu item not found"}
		}
		return nil, errs.WrapCode(err, errs.Internal, "failed to update menu item")
	}

	return convertDBMenuItemToModel(dbItem), nil
}

// DeleteMenuItem removes an item from the menu. Ticket lines referencing it remain.
func (b *business) DeleteMenuItem(ctx context.Context, id uuid.UUID) error {
	affected, err := b.menuRepo.DeleteMenuItem(ctx, pgtx.UUID(id))
	if err != nil {
		return errs.WrapCode(err, errs.Internal, "failed to delete menu item")
	}
	if affected == 0 {
		return &errs.Error{Code: errs.NotFound, Message: "menu item not found"}
	}
	return nil
}

// ListMenuItems returns one page of items whose name contains query, case-insensitively.
func (b *business) ListMenuItems(ctx context.Context, query string, page model.Page) ([]*model.MenuItem, int64, error) {
	var nameFilter pgtype.Text
	if query = strings.TrimSpace(query); query != "" {
		nameFilter = pgtype.Text{String: query, Valid: true}
	}

	dbItems, err := b.menuRepo.ListMenuItems(ctx, menuitems.ListMenuItemsParams{
		NameFilter: nameFilter,
		Limit:      page.Limit(),
		Offset:     page.Offset(),
	})
	if err != nil {
		return nil, 0, errs.WrapCode(err, errs.Internal, "failed to list menu items")
	}

	total, err := b.menuRepo.CountMenuItems(ctx, nameFilter)
	if err != nil {
		return nil, 0, errs.WrapCode(err, errs.Internal, "failed to count menu items")
	}

	result := make([]*model.MenuItem, 0, len(dbItems))
	for _, dbItem := range dbItems {
		result = append(result, convertDBMenuItemToModel(dbItem))
	}
	return result, total, nil
}

// convertDBMenuItemToModel converts a database menu item to the domain model
func convertDBMenuItemToModel(row menuitems.MenuItem) *model.MenuItem {
	return &model.MenuItem{
		ID:         pgtx.FromUUID(row.ID),
		Name:       row.Name,
		PriceCents: row.PriceCents,
		CreatedAt:  row.CreatedAt.Time,
		UpdatedAt:  row.UpdatedAt.Time,
	}
}
