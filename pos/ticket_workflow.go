package pos

import (
	"context"
	"fmt"

	"encore.dev/rlog"
	"github.com/google/uuid"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"posapp/pos/model"
	"posapp/pos/workflow"
)

// startTicketWorkflow starts the idle auto-cancel workflow of a new ticket
func (s *Service) startTicketWorkflow(ctx context.Context, ticketID uuid.UUID) error {
	workflowID := workflow.TicketWorkflowID(ticketID)

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: s.taskQueue,
	}

	params := workflow.TicketLifecycleParams{
		TicketID:    ticketID.String(),
		IdleTimeout: s.idleTimeout,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.TicketLifecycle, params)
	if err != nil {
		// A replayed CreateTicket starts the same workflow id again.
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("workflow already started", "ticket_id", ticketID, "workflow_id", workflowID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", workflowID, err)
	}
	return nil
}

// signalLineAdded restarts the idle timer of the ticket
func (s *Service) signalLineAdded(ctx context.Context, line *model.TicketLine) error {
	signal := workflow.LineAddedSignal{
		LineID: line.ID.String(),
		Qty:    line.Qty,
	}

	return s.temporal.SignalWorkflow(ctx, workflow.TicketWorkflowID(line.TicketID), "", workflow.LineAddedSignalName, signal)
}

// signalTicketPaid ends the lifecycle workflow of the ticket
func (s *Service) signalTicketPaid(ctx context.Context, payment *model.TicketPayment) error {
	signal := workflow.TicketPaidSignal{
		Method:     payment.Method,
		TotalCents: payment.TotalCents,
	}

	return s.temporal.SignalWorkflow(ctx, workflow.TicketWorkflowID(payment.TicketID), "", workflow.TicketPaidSignalName, signal)
}
