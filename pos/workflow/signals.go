package workflow

import "github.com/google/uuid"

const (
	// Signal names
	LineAddedSignalName  = "ticket-line-added"
	TicketPaidSignalName = "ticket-paid"

	// CancelReasonIdle is recorded when a ticket is cancelled for inactivity.
	CancelReasonIdle = "idle_timeout"
)

// LineAddedSignal restarts the idle timer of a ticket.
type LineAddedSignal struct {
	LineID string `json:"line_id"`
	Qty    int32  `json:"qty"`
}

// TicketPaidSignal ends the lifecycle of a ticket.
type TicketPaidSignal struct {
	Method     string `json:"method"`
	TotalCents int64  `json:"total_cents"`
}

// TicketWorkflowID is the workflow id of a ticket's lifecycle workflow.
func TicketWorkflowID(ticketID uuid.UUID) string {
	return "ticket-" + ticketID.String()
}
