package ticket

import (
	"posapp/pos/model"
	"posapp/pos/store/pgtx"
	"posapp/pos/store/tickets"
)

const unknownItemName = "Unknown"

// convertDBTicketToModel converts a database ticket to the domain model
func convertDBTicketToModel(row tickets.Ticket) *model.Ticket {
	return &model.Ticket{
		ID:        pgtx.FromUUID(row.ID),
		Status:    model.TicketStatus(row.Status),
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}

// convertDBLineToModel converts a database ticket line to the domain model.
// Lines whose menu item was deleted are named "Unknown".
func convertDBLineToModel(row tickets.TicketLine) model.TicketLine {
	name := unknownItemName
	if row.ItemName.Valid {
		name = row.ItemName.String
	}

	return model.TicketLine{
		ID:             pgtx.FromUUID(row.ID),
		TicketID:       pgtx.FromUUID(row.TicketID),
		MenuItemID:     pgtx.FromUUID(row.MenuItemID),
		ItemName:       name,
		Qty:            row.Qty,
		UnitPriceCents: row.UnitPriceCents,
		LineTotalCents: int64(row.Qty) * row.UnitPriceCents,
		CreatedAt:      row.CreatedAt.Time,
	}
}
