package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -source=gateway.go -destination=../mocks/payment/payment_gateway/gateway.go -package=payment_gateway

// ChargeRequest asks the gateway to collect amountCents for a ticket.
type ChargeRequest struct {
	TicketID    uuid.UUID
	AmountCents int64
	// ShouldSucceed drives the mock gateway outcome.
	ShouldSucceed bool
}

type ChargeResult struct {
	Success           bool
	ProviderReference string
	Error             string
}

// Gateway charges an external payment provider.
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error)
}

// MockGateway approves or declines charges according to ChargeRequest.ShouldSucceed.
type MockGateway struct{}

func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

func (MockGateway) Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error) {
	if err := ctx.Err(); err != nil {
		return ChargeResult{}, err
	}
	if !req.ShouldSucceed {
		return ChargeResult{Success: false, Error: "mock payment declined"}, nil
	}
	reference := fmt.Sprintf("MOCK-%s", strings.ReplaceAll(uuid.NewString(), "-", ""))
	return ChargeResult{Success: true, ProviderReference: reference}, nil
}
