package pos

import (
	"context"
	"testing"

	"encore.dev/beta/errs"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"posapp/pos/model"
	"posapp/pos/workflow"
)

func TestPayTicketCash(t *testing.T) {
	ticketID := uuid.New()

	testCases := []struct {
		name          string
		ticketID      string
		mockReturn    *model.TicketPayment
		mockError     error
		expectedCode  errs.ErrCode
		expectPayCall bool
	}{
		{
			name:     "successful_payment_signals_workflow",
			ticketID: ticketID.String(),
			mockReturn: &model.TicketPayment{
				TicketID:   ticketID,
				Status:     model.TicketStatusPaid,
				TotalCents: 1250,
				Method:     model.PaymentMethodCash,
			},
			expectPayCall: true,
		},
		{
			name:          "ticket_already_paid",
			ticketID:      ticketID.String(),
			mockError:     &errs.Error{Code: errs.FailedPrecondition, Message: "ticket is already paid"},
			expectedCode:  errs.FailedPrecondition,
			expectPayCall: true,
		},
		{
			name:          "ticket_not_found",
			ticketID:      ticketID.String(),
			mockError:     &errs.Error{Code: errs.NotFound, Message: "ticket not found"},
			expectedCode:  errs.NotFound,
			expectPayCall: true,
		},
		{
			name:         "invalid_ticket_id",
			ticketID:     "",
			expectedCode: errs.InvalidArgument,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts := newTestService(t)

			if tc.expectPayCall {
				ts.tickets.EXPECT().
					PayCash(gomock.Any(), ticketID).
					Return(tc.mockReturn, tc.mockError).
					Times(1)
			}
			if tc.mockReturn != nil {
				ts.temporal.On("SignalWorkflow",
					mock.Anything,
					workflow.TicketWorkflowID(ticketID),
					"",
					workflow.TicketPaidSignalName,
					workflow.TicketPaidSignal{Method: model.PaymentMethodCash, TotalCents: 1250},
				).Return(nil).Once()
			}

			response, err := ts.service.PayTicketCash(context.Background(), tc.ticketID)

			if tc.expectedCode != errs.OK {
				require.Error(t, err)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, *tc.mockReturn, response.Payment)
		})
	}
}

func TestPayTicketWithGateway(t *testing.T) {
	ticketID := uuid.New()
	reference := "MOCK-0123456789abcdef0123456789abcdef"
	declined := false

	testCases := []struct {
		name                string
		request             *PayTicketWithGatewayRequest
		expectShouldSucceed bool
		mockReturn          *model.TicketPayment
		mockError           error
		expectedCode        errs.ErrCode
	}{
		{
			name:                "approve_by_default",
			request:             &PayTicketWithGatewayRequest{},
			expectShouldSucceed: true,
			mockReturn: &model.TicketPayment{
				TicketID:          ticketID,
				Status:            model.TicketStatusPaid,
				TotalCents:        900,
				Method:            model.PaymentMethodGateway,
				ProviderReference: &reference,
			},
		},
		{
			name:                "declined",
			request:             &PayTicketWithGatewayRequest{ShouldSucceed: &declined},
			expectShouldSucceed: false,
			mockError:           &errs.Error{Code: errs.FailedPrecondition, Message: "payment declined"},
			expectedCode:        errs.FailedPrecondition,
		},
		{
			name:                "gateway_unavailable",
			request:             &PayTicketWithGatewayRequest{},
			expectShouldSucceed: true,
			mockError:           &errs.Error{Code: errs.Unavailable, Message: "payment gateway unavailable"},
			expectedCode:        errs.Unavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts := newTestService(t)

			ts.tickets.EXPECT().
				PayWithGateway(gomock.Any(), ticketID, tc.expectShouldSucceed).
				Return(tc.mockReturn, tc.mockError).
				Times(1)
			if tc.mockReturn != nil {
				ts.temporal.On("SignalWorkflow",
					mock.Anything,
					workflow.TicketWorkflowID(ticketID),
					"",
					workflow.TicketPaidSignalName,
					workflow.TicketPaidSignal{Method: model.PaymentMethodGateway, TotalCents: 900},
				).Return(nil).Once()
			}

			response, err := ts.service.PayTicketWithGateway(context.Background(), ticketID.String(), tc.request)

			if tc.expectedCode != errs.OK {
				require.Error(t, err)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				return
			}

			require.NoError(t, err)
			require.NotNil(t, response.Payment.ProviderReference)
			assert.Equal(t, reference, *response.Payment.ProviderReference)
		})
	}
}
