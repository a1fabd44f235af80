package model

import (
	"time"

	"github.com/google/uuid"
)

type Ticket struct {
	ID         uuid.UUID    `json:"id"`
	Status     TicketStatus `json:"status"`
	Lines      []TicketLine `json:"lines,omitempty"`
	TotalCents int64        `json:"total_cents"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

type TicketStatus string

const (
	TicketStatusOpen      TicketStatus = "open"
	TicketStatusPaid      TicketStatus = "paid"
	TicketStatusCancelled TicketStatus = "cancelled"
)

type TicketLine struct {
	ID             uuid.UUID `json:"id"`
	TicketID       uuid.UUID `json:"ticket_id"`
	MenuItemID     uuid.UUID `json:"menu_item_id"`
	ItemName       string    `json:"item_name"`
	Qty            int32     `json:"qty"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	LineTotalCents int64     `json:"line_total_cents"`
	CreatedAt      time.Time `json:"created_at"`
}

// TicketPayment is the result of settling a ticket.
type TicketPayment struct {
	TicketID          uuid.UUID    `json:"ticket_id"`
	Status            TicketStatus `json:"status"`
	TotalCents        int64        `json:"total_cents"`
	Method            string       `json:"method"`
	ProviderReference *string      `json:"provider_reference,omitempty"`
}

const (
	PaymentMethodCash    = "cash"
	PaymentMethodGateway = "gateway"
)
