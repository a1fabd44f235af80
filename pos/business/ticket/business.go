package ticket

import (
	"context"

	"github.com/google/uuid"

	"posapp/pos/domain"
	"posapp/pos/model"
	"posapp/pos/payment"
	"posapp/pos/store/menuitems"
	"posapp/pos/store/tickets"
)

//go:generate mockgen -source=business.go -destination=../../mocks/business/ticket_business/business.go -package=ticket_business

type Business interface {
	CreateTicket(ctx context.Context) (*model.Ticket, error)
	AddLine(ctx context.Context, ticketID, menuItemID uuid.UUID, qty int32) (*model.TicketLine, error)
	PayCash(ctx context.Context, ticketID uuid.UUID) (*model.TicketPayment, error)
	PayWithGateway(ctx context.Context, ticketID uuid.UUID, shouldSucceed bool) (*model.TicketPayment, error)
	GetTicket(ctx context.Context, id uuid.UUID) (*model.Ticket, error)
	ListTickets(ctx context.Context, page model.Page) ([]*model.Ticket, int64, error)
	CancelIfOpen(ctx context.Context, id uuid.UUID) (bool, error)
}

// business handles ticket commands and queries. Writes run on the transaction the
// command pipeline binds to ctx.
type business struct {
	ticketRepo   tickets.Querier
	menuRepo     menuitems.Querier
	stateMachine domain.StateMachine
	gateway      payment.Gateway
	newID        func() uuid.UUID
}

func NewTicketBusiness(
	ticketRepo tickets.Querier,
	menuRepo menuitems.Querier,
	stateMachine domain.StateMachine,
	gateway payment.Gateway,
) Business {
	return &business{
		ticketRepo:   ticketRepo,
		menuRepo:     menuRepo,
		stateMachine: stateMachine,
		gateway:      gateway,
		newID:        uuid.New,
	}
}
