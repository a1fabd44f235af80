package workflow

import (
	"context"

	"github.com/google/uuid"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"posapp/pos/business/ticket"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	TicketBusiness ticket.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(ticketBusiness ticket.Business) {
	activityDeps = &ActivityDependencies{
		TicketBusiness: ticketBusiness,
	}
}

// CancelStaleTicketActivity cancels a ticket that is still open. It returns false when
// the ticket was paid or cancelled in the meantime.
func CancelStaleTicketActivity(ctx context.Context, ticketID string) (bool, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing cancel stale ticket activity", "ticketID", ticketID)

	if activityDeps == nil || activityDeps.TicketBusiness == nil {
		logger.Error("Activity dependencies not set")
		return false, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	id, err := uuid.Parse(ticketID)
	if err != nil {
		return false, temporal.NewNonRetryableApplicationError("invalid ticket id", "InvalidTicketID", err)
	}

	cancelled, err := activityDeps.TicketBusiness.CancelIfOpen(ctx, id)
	if err != nil {
		logger.Error("Failed to cancel ticket", "ticketID", ticketID, "error", err)
		return false, err
	}

	logger.Info("Cancel stale ticket activity done", "ticketID", ticketID, "cancelled", cancelled, "reason", CancelReasonIdle)
	return cancelled, nil
}
