package ticket

import (
	"context"
	"testing"
	"time"

	"encore.dev/beta/errs"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"posapp/pos/model"
	"posapp/pos/store/pgtx"
	"posapp/pos/store/tickets"
)

func TestCreateTicket(t *testing.T) {
	ticketID := uuid.New()
	now := time.Now().UTC()

	testCases := []struct {
		name         string
		mockReturn   tickets.Ticket
		mockError    error
		expectedCode errs.ErrCode
	}{
		{
			name: "happy_case",
			mockReturn: tickets.Ticket{
				ID:        pgtx.UUID(ticketID),
				Status:    "open",
				CreatedAt: pgtype.Timestamptz{Time: now, Valid: true},
				UpdatedAt: pgtype.Timestamptz{Time: now, Valid: true},
			},
			expectedCode: errs.OK,
		},
		{
			name:         "general_error",
			mockError:    assert.AnError,
			expectedCode: errs.Internal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, deps := newTestBusiness(t, ticketID)
			deps.tickets.EXPECT().CreateTicket(gomock.Any(), tickets.CreateTicketParams{
				ID:     pgtx.UUID(ticketID),
				Status: "open",
			}).Return(tc.mockReturn, tc.mockError)

			result, err := b.CreateTicket(context.Background())

			assert.Equal(t, tc.expectedCode, errs.Code(err))
			if tc.expectedCode != errs.OK {
				assert.Nil(t, result)
				assert.Contains(t, err.Error(), "failed to create ticket")
				return
			}
			require.NotNil(t, result)
			assert.Equal(t, ticketID, result.ID)
			assert.Equal(t, model.TicketStatusOpen, result.Status)
			assert.Empty(t, result.Lines)
			assert.Equal(t, int64(0), result.TotalCents)
		})
	}
}
