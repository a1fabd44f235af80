package domain

import (
	"context"
	"testing"

	"encore.dev/beta/errs"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"posapp/pos/mocks/store/ticket_store"
	"posapp/pos/model"
	"posapp/pos/store/pgtx"
	"posapp/pos/store/tickets"
)

func TestCanTransition(t *testing.T) {
	testCases := []struct {
		name     string
		from     model.TicketStatus
		to       model.TicketStatus
		expected bool
	}{
		{name: "open_to_paid", from: model.TicketStatusOpen, to: model.TicketStatusPaid, expected: true},
		{name: "open_to_cancelled", from: model.TicketStatusOpen, to: model.TicketStatusCancelled, expected: true},
		{name: "open_to_open", from: model.TicketStatusOpen, to: model.TicketStatusOpen, expected: false},
		{name: "paid_to_cancelled", from: model.TicketStatusPaid, to: model.TicketStatusCancelled, expected: false},
		{name: "cancelled_to_paid", from: model.TicketStatusCancelled, to: model.TicketStatusPaid, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CanTransition(tc.from, tc.to))
		})
	}
}

func TestEnsureOpen(t *testing.T) {
	assert.NoError(t, EnsureOpen("open"))

	for _, status := range []string{"paid", "cancelled", "unknown"} {
		err := EnsureOpen(status)
		assert.Equal(t, errs.FailedPrecondition, errs.Code(err), status)
	}
}

func TestTransitionToPaid(t *testing.T) {
	ticketID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(m *ticket_store.MockQuerier)
		expectedCode  errs.ErrCode
		expectedError string
	}{
		{
			name: "open_ticket_is_paid",
			setupMock: func(m *ticket_store.MockQuerier) {
				m.EXPECT().GetTicketForUpdate(gomock.Any(), pgtx.UUID(ticketID)).
					Return(tickets.Ticket{ID: pgtx.UUID(ticketID), Status: "open"}, nil)
				m.EXPECT().UpdateTicketStatus(gomock.Any(), tickets.UpdateTicketStatusParams{
					ID:     pgtx.UUID(ticketID),
					Status: "paid",
				}).Return(tickets.Ticket{ID: pgtx.UUID(ticketID), Status: "paid"}, nil)
			},
			expectedCode: errs.OK,
		},
		{
			name: "paid_ticket_is_rejected",
			setupMock: func(m *ticket_store.MockQuerier) {
				m.EXPECT().GetTicketForUpdate(gomock.Any(), gomock.Any()).
					Return(tickets.Ticket{ID: pgtx.UUID(ticketID), Status: "paid"}, nil)
			},
			expectedCode:  errs.FailedPrecondition,
			expectedError: "ticket is already paid",
		},
		{
			name: "missing_ticket",
			setupMock: func(m *ticket_store.MockQuerier) {
				m.EXPECT().GetTicketForUpdate(gomock.Any(), gomock.Any()).Return(tickets.Ticket{}, pgx.ErrNoRows)
			},
			expectedCode:  errs.NotFound,
			expectedError: "ticket not found",
		},
		{
			name: "lock_fails",
			setupMock: func(m *ticket_store.MockQuerier) {
				m.EXPECT().GetTicketForUpdate(gomock.Any(), gomock.Any()).Return(tickets.Ticket{}, assert.AnError)
			},
			expectedCode:  errs.Internal,
			expectedError: "failed to lock ticket",
		},
		{
			name: "update_fails",
			setupMock: func(m *ticket_store.MockQuerier) {
				m.EXPECT().GetTicketForUpdate(gomock.Any(), gomock.Any()).
					Return(tickets.Ticket{ID: pgtx.UUID(ticketID), Status: "open"}, nil)
				m.EXPECT().UpdateTicketStatus(gomock.Any(), gomock.Any()).Return(tickets.Ticket{}, assert.AnError)
			},
			expectedCode:  errs.Internal,
			expectedError: "failed to mark ticket as paid",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := ticket_store.NewMockQuerier(ctrl)
			tc.setupMock(mockRepo)
			sm := NewTicketStateMachine(mockRepo)

			updated, err := sm.TransitionToPaid(context.Background(), ticketID)

			assert.Equal(t, tc.expectedCode, errs.Code(err))
			if tc.expectedError != "" {
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}
			assert.Equal(t, "paid", updated.Status)
		})
	}
}

func TestTransitionToCancelled(t *testing.T) {
	testCases := []struct {
		name           string
		affected       int64
		repoErr        error
		expectedResult bool
		expectedCode   errs.ErrCode
	}{
		{name: "open_ticket_cancelled", affected: 1, expectedResult: true, expectedCode: errs.OK},
		{name: "already_settled", affected: 0, expectedResult: false, expectedCode: errs.OK},
		{name: "repository_error", repoErr: assert.AnError, expectedCode: errs.Internal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := ticket_store.NewMockQuerier(ctrl)
			mockRepo.EXPECT().CancelTicketIfOpen(gomock.Any(), gomock.Any()).Return(tc.affected, tc.repoErr)
			sm := NewTicketStateMachine(mockRepo)

			cancelled, err := sm.TransitionToCancelled(context.Background(), uuid.New())

			assert.Equal(t, tc.expectedResult, cancelled)
			assert.Equal(t, tc.expectedCode, errs.Code(err))
		})
	}
}
