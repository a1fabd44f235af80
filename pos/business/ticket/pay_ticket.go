package ticket

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"github.com/google/uuid"

	"posapp/pos/domain"
	"posapp/pos/model"
	"posapp/pos/payment"
	"posapp/pos/store/tickets"
)

// PayCash settles an open ticket in cash.
func (b *business) PayCash(ctx context.Context, ticketID uuid.UUID) (*model.TicketPayment, error) {
	paid, err := b.stateMachine.TransitionToPaid(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	total, err := b.ticketRepo.GetTicketTotal(ctx, paid.ID)
	if err != nil {
		return nil, errs.WrapCode(err, errs.Internal, "failed to compute ticket total")
	}

	return &model.TicketPayment{
		TicketID:   ticketID,
		Status:     model.TicketStatus(paid.Status),
		TotalCents: total,
		Method:     model.PaymentMethodCash,
	}, nil
}

// PayWithGateway charges the ticket total through the payment gateway and marks the
// ticket paid when the charge is approved. A declined charge leaves the ticket open.
func (b *business) PayWithGateway(ctx context.Context, ticketID uuid.UUID, shouldSucceed bool) (*model.TicketPayment, error) {
	var result *model.TicketPayment
	err := b.stateMachine.ExecuteWithLock(ctx, ticketID, func(current tickets.Ticket) error {
		if err := domain.EnsureOpen(current.Status); err != nil {
			return err
		}

		total, err := b.ticketRepo.GetTicketTotal(ctx, current.ID)
		if err != nil {
			return errs.WrapCode(err, errs.Internal, "failed to compute ticket total")
		}

		charge, err := b.gateway.Charge(ctx, payment.ChargeRequest{
			TicketID:      ticketID,
			AmountCents:   total,
			ShouldSucceed: shouldSucceed,
		})
		if err != nil {
			rlog.Error("payment gateway call failed", "ticket_id", ticketID, "error", err)
			return errs.WrapCode(err, errs.Unavailable, "payment gateway unavailable")
		}
		if !charge.Success {
			message := charge.Error
			if message == "" {
				message = "payment declined"
			}
			return &errs.Error{Code: errs.FailedPrecondition, Message: message}
		}

		paid, err := b.ticketRepo.UpdateTicketStatus(ctx, tickets.UpdateTicketStatusParams{
			ID:     current.ID,
			Status: string(model.TicketStatusPaid),
		})
		if err != nil {
			rlog.Error("ticket charged but status update failed", "ticket_id", ticketID, "provider_reference", charge.ProviderReference, "error", err)
			return errs.WrapCode(err, errs.Internal, "failed to mark ticket as paid")
		}

		reference := charge.ProviderReference
		result = &model.TicketPayment{
			TicketID:          ticketID,
			Status:            model.TicketStatus(paid.Status),
			TotalCents:        total,
			Method:            model.PaymentMethodGateway,
			ProviderReference: &reference,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
