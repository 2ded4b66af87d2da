package impl

import (
	"context"
	"log/slog"

	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(txManager repository.TransactionManager, logger *slog.Logger) usecase.AdminUsecase {
	return &adminService{txManager: txManager, logger: logger}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns every family member, passwords included, for the admin
// member editor.
func (srv *adminService) ListUsers(ctx context.Context) ([]entity.User, error) {
	var users []entity.User

	err := srv.txManager.Execute(ctx, func(store repository.RecordStore) error {
		loaded, err := store.LoadUsers(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load members")
		}
		users = loaded

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list members", slog.Any("error", err))

		return nil, err
	}

	return users, nil
}

// SaveUser creates a member when the input carries no ID, or replaces the
// member's profile otherwise. Updating an unknown ID fails with UserNotFound.
func (srv *adminService) SaveUser(ctx context.Context, input usecase.SaveUserInput) (*entity.User, error) {
	user := entity.User{
		ID:               input.ID,
		Name:             input.Name,
		Password:         input.Password,
		Balance:          entity.RoundBalance(input.Balance),
		HouseworkCredits: input.HouseworkCredits,
		Role:             input.Role,
		Avatar:           input.Avatar,
	}

	err := srv.txManager.Execute(ctx, func(store repository.RecordStore) error {
		users, err := store.LoadUsers(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load members")
		}

		if user.ID == "" {
			user.ID = uuid.NewString()
			users = append(users, user)
		} else {
			idx := -1
			for i := range users {
				if users[i].ID == user.ID {
					idx = i

					break
				}
			}
			if idx < 0 {
				return domainerrors.ErrUserNotFound
			}
			// An empty password on update keeps the existing passphrase.
			if user.Password == "" {
				user.Password = users[idx].Password
			}
			users[idx] = user
		}

		if err := store.SaveUsers(ctx, users); err != nil {
			return errors.Wrap(err, "failed to save members")
		}

		return srv.refreshSession(ctx, store, &user)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to save member", slog.Any("error", err), slog.String("user_id", input.ID))

		return nil, err
	}
	srv.log(ctx).Info("Member saved", slog.String("user_id", user.ID), slog.String("role", user.Role.String()))

	return &user, nil
}

// DeleteUser removes a member. The acting admin can never delete their own
// account, which keeps the session identity valid.
func (srv *adminService) DeleteUser(ctx context.Context, actorID, targetID string) error {
	if actorID == targetID {
		return domainerrors.ErrCannotDeleteSelf
	}

	err := srv.txManager.Execute(ctx, func(store repository.RecordStore) error {
		users, err := store.LoadUsers(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load members")
		}

		kept := make([]entity.User, 0, len(users))
		for i := range users {
			if users[i].ID != targetID {
				kept = append(kept, users[i])
			}
		}
		if len(kept) == len(users) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(store.SaveUsers(ctx, kept), "failed to save members")
	})
	if err != nil {
		srv.log(ctx).Warn("Delete member rejected", slog.Any("error", err), slog.String("target_id", targetID))

		return err
	}
	srv.log(ctx).Info("Member deleted", slog.String("target_id", targetID))

	return nil
}

// SaveDish creates a dish when the input carries no ID, or replaces the dish
// otherwise. A dish supporting no payment method never reaches the menu.
func (srv *adminService) SaveDish(ctx context.Context, input usecase.SaveDishInput) (*entity.Dish, error) {
	dish := entity.Dish{
		ID:                input.ID,
		Name:              input.Name,
		Description:       input.Description,
		Price:             input.Price,
		ChorePrice:        input.ChorePrice,
		SupportsBalance:   input.SupportsBalance,
		SupportsHousework: input.SupportsHousework,
		ImageURL:          input.ImageURL,
		Category:          input.Category,
		Ingredients:       input.Ingredients,
		Steps:             input.Steps,
		CookingTime:       input.CookingTime,
		Difficulty:        input.Difficulty,
		TasteOptions:      input.TasteOptions,
	}
	if !dish.Payable() {
		return nil, domainerrors.ErrDishNotPayable
	}

	err := srv.txManager.Execute(ctx, func(store repository.RecordStore) error {
		dishes, err := store.LoadDishes(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load menu")
		}

		if dish.ID == "" {
			dish.ID = uuid.NewString()
			dishes = append(dishes, dish)
		} else {
			idx := -1
			for i := range dishes {
				if dishes[i].ID == dish.ID {
					idx = i

					break
				}
			}
			if idx < 0 {
				return domainerrors.ErrDishNotFound
			}
			dishes[idx] = dish
		}

		return errors.Wrap(store.SaveDishes(ctx, dishes), "failed to save menu")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to save dish", slog.Any("error", err), slog.String("dish_id", input.ID))

		return nil, err
	}
	srv.log(ctx).Info("Dish saved", slog.String("dish_id", dish.ID), slog.String("name", dish.Name))

	return &dish, nil
}

// DeleteDish removes a dish from the menu. Existing orders keep their dish
// snapshot, and carts holding the dish settle from that snapshot too.
func (srv *adminService) DeleteDish(ctx context.Context, dishID string) error {
	err := srv.txManager.Execute(ctx, func(store repository.RecordStore) error {
		dishes, err := store.LoadDishes(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load menu")
		}

		kept := make([]entity.Dish, 0, len(dishes))
		for i := range dishes {
			if dishes[i].ID != dishID {
				kept = append(kept, dishes[i])
			}
		}
		if len(kept) == len(dishes) {
			return domainerrors.ErrDishNotFound
		}

		return errors.Wrap(store.SaveDishes(ctx, kept), "failed to save menu")
	})
	if err != nil {
		srv.log(ctx).Warn("Delete dish rejected", slog.Any("error", err), slog.String("dish_id", dishID))

		return err
	}
	srv.log(ctx).Info("Dish deleted", slog.String("dish_id", dishID))

	return nil
}

// refreshSession rewrites the session record when the edited member is the
// one currently logged in, so the next profile read sees the edit.
func (srv *adminService) refreshSession(ctx context.Context, store repository.RecordStore, user *entity.User) error {
	session, err := store.LoadSession(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load session")
	}
	if session == nil || session.ID != user.ID {
		return nil
	}

	return errors.Wrap(store.SaveSession(ctx, user), "failed to refresh session")
}
