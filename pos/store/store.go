package store

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"posapp/pos/store/menuitems"
	"posapp/pos/store/records"
	"posapp/pos/store/tickets"
	"posapp/pos/store/tokens"
)

// Store combines all domain-specific repositories
type Store struct {
	Tickets   tickets.Querier
	MenuItems menuitems.Querier
	Records   records.Querier
	Tokens    tokens.Querier
}

// NewStore creates a new Store with all domain queriers
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		Tickets:   tickets.New(db),
		MenuItems: menuitems.New(db),
		Records:   records.New(db),
		Tokens:    tokens.New(db),
	}
}
