package pos

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.uber.org/mock/gomock"

	"posapp/pos/model"
	"posapp/pos/workflow"
)

func TestCreateTicket(t *testing.T) {
	now := time.Now()
	ticketID := uuid.New()

	testCases := []struct {
		name               string
		mockBusinessReturn *model.Ticket
		mockBusinessError  error
		mockTemporalError  error
		expectedError      string
		expectWorkflow     bool
	}{
		{
			name: "successful_ticket_creation_with_workflow",
			mockBusinessReturn: &model.Ticket{
				ID:        ticketID,
				Status:    model.TicketStatusOpen,
				CreatedAt: now,
				UpdatedAt: now,
			},
			expectWorkflow: true,
		},
		{
			name: "successful_ticket_creation_workflow_fails",
			mockBusinessReturn: &model.Ticket{
				ID:     ticketID,
				Status: model.TicketStatusOpen,
			},
			mockTemporalError: errors.New("temporal workflow failed"),
			expectWorkflow:    true, // API still succeeds even if workflow fails
		},
		{
			name: "workflow_already_started",
			mockBusinessReturn: &model.Ticket{
				ID:     ticketID,
				Status: model.TicketStatusOpen,
			},
			mockTemporalError: serviceerror.NewWorkflowExecutionAlreadyStarted("already started", "", ""),
			expectWorkflow:    true,
		},
		{
			name:              "ticket_creation_fails",
			mockBusinessError: errors.New("database error"),
			expectedError:     "database error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts := newTestService(t)

			ts.tickets.EXPECT().
				CreateTicket(gomock.Any()).
				Return(tc.mockBusinessReturn, tc.mockBusinessError).
				Times(1)

			if tc.expectWorkflow {
				ts.temporal.On("ExecuteWorkflow",
					mock.Anything,
					mock.MatchedBy(func(opts client.StartWorkflowOptions) bool {
						return opts.ID == workflow.TicketWorkflowID(ticketID) && opts.TaskQueue == "pos-tickets-test"
					}),
					mock.Anything,
					workflow.TicketLifecycleParams{TicketID: ticketID.String(), IdleTimeout: time.Hour},
				).Return(nil, tc.mockTemporalError).Once()
			}

			response, err := ts.service.CreateTicket(context.Background())

			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, response)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, response)
			assert.Equal(t, ticketID, response.Ticket.ID)
			assert.Equal(t, model.TicketStatusOpen, response.Ticket.Status)
		})
	}
}
