package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"posapp/pos/model"
	"posapp/pos/store/pgtx"
	"posapp/pos/store/tickets"
)

// StateMachine defines ticket state transitions. Every method runs on the transaction
// bound to ctx by the command pipeline.
type StateMachine interface {
	// ExecuteWithLock locks the ticket row and runs businessLogic against the locked state.
	ExecuteWithLock(ctx context.Context, id uuid.UUID, businessLogic func(tickets.Ticket) error) error

	TransitionToPaid(ctx context.Context, id uuid.UUID) (tickets.Ticket, error)
	TransitionToCancelled(ctx context.Context, id uuid.UUID) (bool, error)
}

// TicketStateMachine owns the Open -> Paid / Cancelled lifecycle.
type TicketStateMachine struct {
	ticketRepo tickets.Querier
}

func NewTicketStateMachine(ticketRepo tickets.Querier) *TicketStateMachine {
	return &TicketStateMachine{ticketRepo: ticketRepo}
}

var _ StateMachine = (*TicketStateMachine)(nil)

// CanTransition reports whether a ticket may move from one status to another.
func CanTransition(from, to model.TicketStatus) bool {
	if from != model.TicketStatusOpen {
		return false
	}
	return to == model.TicketStatusPaid || to == model.TicketStatusCancelled
}

// EnsureOpen rejects any change to a ticket that is no longer open.
func EnsureOpen(status string) error {
	switch model.TicketStatus(status) {
	case model.TicketStatusOpen:
		return nil
	case model.TicketStatusPaid:
		return &errs.Error{Code: errs.FailedPrecondition, Message: "ticket is already paid"}
	case model.TicketStatusCancelled:
		return &errs.Error{Code: errs.FailedPrecondition, Message: "ticket is cancelled"}
	default:
		return &errs.Error{Code: errs.FailedPrecondition, Message: "ticket is not open"}
	}
}

func (sm *TicketStateMachine) ExecuteWithLock(ctx context.Context, id uuid.UUID, businessLogic func(tickets.Ticket) error) error {
	// Without a transaction the row lock is released as soon as the select returns.
	current, err := sm.ticketRepo.GetTicketForUpdate(ctx, pgtx.UUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.NotFound, Message: "ticket not found"}
		}
		return errs.WrapCode(err, errs.Internal, "failed to lock ticket")
	}

	return businessLogic(current)
}

// TransitionToPaid moves an open ticket to paid.
func (sm *TicketStateMachine) TransitionToPaid(ctx context.Context, id uuid.UUID) (tickets.Ticket, error) {
	var updated tickets.Ticket
	err := sm.ExecuteWithLock(ctx, id, func(current tickets.Ticket) error {
		if !CanTransition(model.TicketStatus(current.Status), model.TicketStatusPaid) {
			return EnsureOpen(current.Status)
		}

		var err error
		updated, err = sm.ticketRepo.UpdateTicketStatus(ctx, tickets.UpdateTicketStatusParams{
			ID:     current.ID,
			Status: string(model.TicketStatusPaid),
		})
		if err != nil {
			return errs.WrapCode(err, errs.Internal, "failed to mark ticket as paid")
		}
		return nil
	})
	return updated, err
}

// TransitionToCancelled cancels the ticket if it is still open. It reports false
// when the ticket had already left the open state, which is not an error.
func (sm *TicketStateMachine) TransitionToCancelled(ctx context.Context, id uuid.UUID) (bool, error) {
	affected, err := sm.ticketRepo.CancelTicketIfOpen(ctx, pgtx.UUID(id))
	if err != nil {
		return false, errs.WrapCode(err, errs.Internal, "failed to cancel ticket")
	}
	return affected > 0, nil
}
