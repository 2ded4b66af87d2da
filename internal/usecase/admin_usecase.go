package usecase

import (
	"context"

	"canteen/internal/domain/entity"
)

// SaveUserInput carries a full member profile. An empty ID creates a new
// member; a known ID replaces that member's profile.
type SaveUserInput struct {
	ID               string
	Name             string
	Password         string
	Balance          float64
	HouseworkCredits int
	Role             entity.Role
	Avatar           string
}

// SaveDishInput carries a full dish. An empty ID creates a new dish; a known
// ID replaces that dish on the menu. At least one payment method must be
// supported.
type SaveDishInput struct {
	ID                string
	Name              string
	Description       string
	Price             float64
	ChorePrice        int
	SupportsBalance   bool
	SupportsHousework bool
	ImageURL          string
	Category          string
	Ingredients       []string
	Steps             []string
	CookingTime       string
	Difficulty        int
	TasteOptions      []string
}

// AdminUsecase defines the interface for household administration. Role
// gating happens at the delivery boundary; every operation here presumes an
// ADMIN actor, except that DeleteUser still refuses the actor's own account
// regardless of role.
type AdminUsecase interface {
	ListUsers(ctx context.Context) ([]entity.User, error)
	SaveUser(ctx context.Context, input SaveUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, actorID, targetID string) error

	SaveDish(ctx context.Context, input SaveDishInput) (*entity.Dish, error)
	DeleteDish(ctx context.Context, dishID string) error
}
