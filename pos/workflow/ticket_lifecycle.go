package workflow

import (
	"errors"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// TicketLifecycleParams contains parameters for starting the ticket lifecycle workflow
type TicketLifecycleParams struct {
	TicketID    string        `json:"ticket_id"`
	IdleTimeout time.Duration `json:"idle_timeout"`
}

// TicketLifecycle cancels a ticket that sees no activity for IdleTimeout. Every added
// line restarts the timer; payment ends the workflow.
func TicketLifecycle(ctx workflow.Context, params TicketLifecycleParams) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting ticket lifecycle workflow", "ticketID", params.TicketID, "idleTimeout", params.IdleTimeout)

	if params.IdleTimeout <= 0 {
		return temporal.NewNonRetryableApplicationError("idle timeout must be positive", "InvalidParams", nil)
	}

	lineAddedCh := workflow.GetSignalChannel(ctx, LineAddedSignalName)
	ticketPaidCh := workflow.GetSignalChannel(ctx, TicketPaidSignalName)

	settled := false
	var settleErr error

	for !settled {
		timerCtx, cancelTimer := workflow.WithCancel(ctx)
		idleTimer := workflow.NewTimer(timerCtx, params.IdleTimeout)

		selector := workflow.NewSelector(ctx)

		selector.AddReceive(lineAddedCh, func(c workflow.ReceiveChannel, more bool) {
			var signal LineAddedSignal
			c.Receive(ctx, &signal)
			logger.Info("Line added, restarting idle timer", "ticketID", params.TicketID, "lineID", signal.LineID)
			cancelTimer()
		})

		selector.AddReceive(ticketPaidCh, func(c workflow.ReceiveChannel, more bool) {
			var signal TicketPaidSignal
			c.Receive(ctx, &signal)
			logger.Info("Ticket paid, ending lifecycle", "ticketID", params.TicketID, "method", signal.Method, "totalCents", signal.TotalCents)
			cancelTimer()
			settled = true
		})

		selector.AddFuture(idleTimer, func(f workflow.Future) {
			if err := f.Get(ctx, nil); err != nil {
				var canceled *temporal.CanceledError
				if errors.As(err, &canceled) {
					return
				}
				settleErr = err
				settled = true
				return
			}

			logger.Info("Ticket idle, cancelling", "ticketID", params.TicketID)
			cancelled, err := cancelStaleTicket(ctx, params.TicketID)
			if err != nil {
				logger.Error("Failed to cancel idle ticket", "ticketID", params.TicketID, "error", err)
				settleErr = err
			} else if !cancelled {
				logger.Info("Ticket already settled, nothing to cancel", "ticketID", params.TicketID)
			}
			settled = true
		})

		selector.Select(ctx)
	}

	if settleErr != nil {
		return settleErr
	}

	logger.Info("Ticket lifecycle workflow completed", "ticketID", params.TicketID)
	return nil
}

// cancelStaleTicket executes the CancelStaleTicket activity
func cancelStaleTicket(ctx workflow.Context, ticketID string) (bool, error) {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    15 * time.Second,
			MaximumAttempts:    6,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	var cancelled bool
	err := workflow.ExecuteActivity(activityCtx, CancelStaleTicketActivity, ticketID).Get(ctx, &cancelled)
	return cancelled, err
}
