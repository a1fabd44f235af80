package ticket

import (
	"context"
	"errors"

	"encore.dev/beta/errs"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"posapp/pos/domain"
	"posapp/pos/model"
	"posapp/pos/store/pgtx"
	"posapp/pos/store/tickets"
)

// AddLine adds qty of a menu item to an open ticket at the item's current price.
// A line for the same item and price is merged by increasing its quantity.
func (b *business) AddLine(ctx context.Context, ticketID, menuItemID uuid.UUID, qty int32) (*model.TicketLine, error) {
	if qty <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "qty must be greater than zero"}
	}
	if menuItemID == uuid.Nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "menu item is required"}
	}

	var result *model.TicketLine
	err := b.stateMachine.ExecuteWithLock(ctx, ticketID, func(current tickets.Ticket) error {
		if err := domain.EnsureOpen(current.Status); err != nil {
			return err
		}

		item, err := b.menuRepo.GetMenuItem(ctx, pgtx.UUID(menuItemID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return &errs.Error{Code: errs.InvalidArgument, Message: "menu item not found"}
			}
			return errs.WrapCode(err, errs.Internal, "failed to get menu item")
		}

		dbLine, err := b.ticketRepo.UpsertTicketLine(ctx, tickets.UpsertTicketLineParams{
			ID:             pgtx.UUID(b.newID()),
			TicketID:       current.ID,
			MenuItemID:     item.ID,
			Qty:            qty,
			UnitPriceCents: item.PriceCents,
		})
		if err != nil {
			return errs.WrapCode(err, errs.Internal, "failed to add ticket line")
		}

		line := convertDBLineToModel(dbLine)
		line.ItemName = item.Name
		result = &line
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
