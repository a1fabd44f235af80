package ticket

import (
	"testing"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"posapp/pos/domain"
	"posapp/pos/mocks/payment/payment_gateway"
	"posapp/pos/mocks/store/menu_store"
	"posapp/pos/mocks/store/ticket_store"
)

type testDeps struct {
	tickets *ticket_store.MockQuerier
	menu    *menu_store.MockQuerier
	gateway *payment_gateway.MockGateway
}

func newTestBusiness(t *testing.T, id uuid.UUID) (*business, testDeps) {
	ctrl := gomock.NewController(t)

	deps := testDeps{
		tickets: ticket_store.NewMockQuerier(ctrl),
		menu:    menu_store.NewMockQuerier(ctrl),
		gateway: payment_gateway.NewMockGateway(ctrl),
	}
	b := &business{
		ticketRepo:   deps.tickets,
		menuRepo:     deps.menu,
		stateMachine: domain.NewTicketStateMachine(deps.tickets),
		gateway:      deps.gateway,
		newID:        func() uuid.UUID { return id },
	}
	return b, deps
}
