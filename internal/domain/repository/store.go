// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"canteen/internal/domain/entity"
)

// Record names for the four durable records the application persists.
// They match the keys the original household app stored under, so an
// existing data file keeps loading.
const (
	RecordUsers   = "family_users"
	RecordDishes  = "family_dishes"
	RecordOrders  = "family_orders"
	RecordSession = "family_current_user"
)

// RecordStore persists the four named application records. Every mutation is
// written through immediately; loads happen once at session start. A missing
// or unparseable record is silently replaced by built-in defaults (seed
// members and dishes, empty orders, no session) rather than surfaced as an
// error.
type RecordStore interface {
	// LoadUsers returns the persisted member list, or the seed members.
	LoadUsers(ctx context.Context) ([]entity.User, error)

	// SaveUsers writes the full member list through to storage.
	SaveUsers(ctx context.Context, users []entity.User) error

	// LoadDishes returns the persisted menu, or the seed menu.
	LoadDishes(ctx context.Context) ([]entity.Dish, error)

	// SaveDishes writes the full menu through to storage.
	SaveDishes(ctx context.Context, dishes []entity.Dish) error

	// LoadOrders returns the persisted order log, newest first.
	LoadOrders(ctx context.Context) ([]entity.Order, error)

	// SaveOrders writes the full order log through to storage.
	SaveOrders(ctx context.Context, orders []entity.Order) error

	// LoadSession returns the persisted session user, or nil when logged out.
	LoadSession(ctx context.Context) (*entity.User, error)

	// SaveSession writes the session user; nil clears the record.
	SaveSession(ctx context.Context, user *entity.User) error
}

// TransactionManager runs a function against a RecordStore bound to a single
// storage transaction: every write inside the function commits together or
// not at all. Checkout relies on this to make the balance debit and the
// order emission one logical transaction.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(store RecordStore) error) error
}
