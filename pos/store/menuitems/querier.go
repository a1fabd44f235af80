package menuitems

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=querier.go -destination=../../mocks/store/menu_store/querier.go -package=menu_store

type Querier interface {
	CreateMenuItem(ctx context.Context, arg CreateMenuItemParams) (MenuItem, error)
	GetMenuItem(ctx context.Context, id pgtype.UUID) (MenuItem, error)
	UpdateMenuItem(ctx context.Context, arg UpdateMenuItemParams) (MenuItem, error)
	DeleteMenuItem(ctx context.Context, id pgtype.UUID) (int64, error)
	ListMenuItems(ctx context.Context, arg ListMenuItemsParams) ([]MenuItem, error)
	CountMenuItems(ctx context.Context, nameFilter pgtype.Text) (int64, error)
}

var _ Querier = (*Queries)(nil)
