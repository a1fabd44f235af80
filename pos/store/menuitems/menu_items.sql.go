package menuitems

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createMenuItem = `
INSERT INTO menu_items (id, name, price_cents)
VALUES ($1, $2, $3)
RETURNING id, name, price_cents, created_at, updated_at
`

type CreateMenuItemParams struct {
	ID         pgtype.UUID
	Name       string
	PriceCents int64
}

func (q *Queries) CreateMenuItem(ctx context.Context, arg CreateMenuItemParams) (MenuItem, error) {
	row := q.conn(ctx).QueryRow(ctx, createMenuItem, arg.ID, arg.Name, arg.PriceCents)
	var i MenuItem
	err := row.Scan(&i.ID, &i.Name, &i.PriceCents, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getMenuItem = `
SELECT id, name, price_cents, created_at, updated_at FROM menu_items
WHERE id = $1
`

func (q *Queries) GetMenuItem(ctx context.Context, id pgtype.UUID) (MenuItem, error) {
	row := q.conn(ctx).QueryRow(ctx, getMenuItem, id)
	var i MenuItem
	err := row.Scan(&i.ID, &i.Name, &i.PriceCents, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const updateMenuItem = `
UPDATE menu_items
SET name = $2, price_cents = $3, updated_at = now()
WHERE id = $1
RETURNING id, name, price_cents, created_at, updated_at
`

type UpdateMenuItemParams struct {
	ID         pgtype.UUID
	Name       string
	PriceCents int64
}

func (q *Queries) UpdateMenuItem(ctx context.Context, arg UpdateMenuItemParams) (MenuItem, error) {
	row := q.conn(ctx).QueryRow(ctx, updateMenuItem, arg.ID, arg.Name, arg.PriceCents)
	var i MenuItem
	err := row.Scan(&i.ID, &i.Name, &i.PriceCents, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const deleteMenuItem = `
DELETE FROM menu_items
WHERE id = $1
`

func (q *Queries) DeleteMenuItem(ctx context.Context, id pgtype.UUID) (int64, error) {
	result, err := q.conn(ctx).Exec(ctx, deleteMenuItem, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listMenuItems = `
SELECT id, name, price_cents, created_at, updated_at FROM menu_items
WHERE $1::text IS NULL OR name ILIKE '%' || $1::text || '%'
ORDER BY name, id
LIMIT $2 OFFSET $3
`

type ListMenuItemsParams struct {
	NameFilter pgtype.Text
	Limit      int32
	Offset     int32
}

func (q *Queries) ListMenuItems(ctx context.Context, arg ListMenuItemsParams) ([]MenuItem, error) {
	rows, err := q.conn(ctx).Query(ctx, listMenuItems, arg.NameFilter, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []MenuItem
	for rows.Next() {
		var i MenuItem
		if err := rows.Scan(&i.ID, &i.Name, &i.PriceCents, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countMenuItems = `
SELECT count(*) FROM menu_items
WHERE $1::text IS NULL OR name ILIKE '%' || $1::text || '%'
`

func (q *Queries) CountMenuItems(ctx context.Context, nameFilter pgtype.Text) (int64, error) {
	row := q.conn(ctx).QueryRow(ctx, countMenuItems, nameFilter)
	var count int64
	err := row.Scan(&count)
	return count, err
}
