package pos

import (
	"context"
	"testing"
	"time"

	"encore.dev/beta/auth"
	"encore.dev/et"
	"github.com/google/uuid"
	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"posapp/pos/mocks/business/menu_business"
	"posapp/pos/mocks/business/ticket_business"
)

// Run tests using `encore test`, which compiles the Encore app and then runs `go test`.

type testService struct {
	service  *Service
	tickets  *ticket_business.MockBusiness
	menu     *menu_business.MockBusiness
	temporal *mocks.Client
}

func newTestService(t *testing.T) *testService {
	t.Helper()
	ctrl := gomock.NewController(t)

	ts := &testService{
		tickets:  ticket_business.NewMockBusiness(ctrl),
		menu:     menu_business.NewMockBusiness(ctrl),
		temporal: mocks.NewClient(t),
	}
	ts.service = &Service{
		tickets:     ts.tickets,
		menu:        ts.menu,
		temporal:    ts.temporal,
		taskQueue:   "pos-tickets-test",
		idleTimeout: time.Hour,
	}

	runAsyncInline(t)
	return ts
}

// runAsyncInline makes workflow starts and signals run before the endpoint returns.
func runAsyncInline(t *testing.T) {
	t.Helper()
	previous := runAsync
	runAsync = func(op string, fn func(ctx context.Context) error) {
		_ = fn(context.Background())
	}
	t.Cleanup(func() { runAsync = previous })
}

// authenticateAs makes the current test run as a fresh caller holding role.
func authenticateAs(role string) uuid.UUID {
	caller := uuid.New()
	et.OverrideAuthInfo(auth.UID(caller.String()), &AuthData{Role: role})
	return caller
}
