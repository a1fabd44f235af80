package pos

import "posapp/pos/pipeline"

// Command and query descriptors. Records are keyed by these names, so renaming one
// orphans its stored responses.
var (
	createTicketOp   = pipeline.IdempotentCommand("CreateTicketCommand")
	addTicketLineOp  = pipeline.IdempotentCommand("AddTicketLineCommand")
	payCashOp        = pipeline.IdempotentCommand("PayTicketCashCommand")
	payWithGatewayOp = pipeline.IdempotentCommand("PayTicketWithGatewayCommand")
	getTicketOp      = pipeline.Query("GetTicketDetailsQuery")
	listTicketsOp    = pipeline.Query("GetTicketsQuery")

	createMenuItemOp = pipeline.Command("CreateMenuItemCommand")
	updateMenuItemOp = pipeline.Command("UpdateMenuItemCommand")
	deleteMenuItemOp = pipeline.Command("DeleteMenuItemCommand")
	listMenuItemsOp  = pipeline.Query("GetMenuItemsQuery")
)
