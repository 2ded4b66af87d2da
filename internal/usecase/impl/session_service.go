// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "canteen/internal/delivery/context"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/domain/service"
	"canteen/internal/usecase"

	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager    repository.TransactionManager
	tokenService service.TokenService
	cart         usecase.CartUsecase
	logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	txManager repository.TransactionManager,
	tokenService service.TokenService,
	cart usecase.CartUsecase,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		txManager:    txManager,
		tokenService: tokenService,
		cart:         cart,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login authenticates a member by name and exact password match, persists the
// current-user record, and issues a session token.
func (srv *sessionService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Logging in", slog.String("name", input.Name))

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(store repository.RecordStore) error {
		users, err := store.LoadUsers(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load members")
		}

		for i := range users {
			if users[i].Name == input.Name && users[i].Password == input.Password {
				user = &users[i]

				break
			}
		}
		if user == nil {
			return domainerrors.ErrInvalidCredentials
		}

		return errors.Wrap(store.SaveSession(ctx, user), "failed to persist session")
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("name", input.Name), slog.Any("error", err))

		return nil, err
	}

	token, err := srv.tokenService.GenerateToken(user.ID, user.Role)
	if err != nil {
		srv.log(ctx).Error("Failed to generate session token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate session token")
	}
	srv.log(ctx).Info("Login succeeded", slog.String("user_id", user.ID), slog.String("role", user.Role.String()))

	return &usecase.LoginOutput{Token: token, User: user}, nil
}

// Logout clears the persisted session record and drops the member's cart.
func (srv *sessionService) Logout(ctx context.Context, userID string) error {
	srv.log(ctx).Info("Logging out", slog.String("user_id", userID))

	err := srv.txManager.Execute(ctx, func(store repository.RecordStore) error {
		return errors.Wrap(store.SaveSession(ctx, nil), "failed to clear session")
	})
	if err != nil {
		srv.log(ctx).Error("Logout failed", slog.Any("error", err), slog.String("user_id", userID))

		return err
	}

	return srv.cart.Clear(ctx, userID)
}

// Current returns the member behind the given session identity, with the
// freshest balances from storage.
func (srv *sessionService) Current(ctx context.Context, userID string) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(store repository.RecordStore) error {
		found, err := findUser(ctx, store, userID)
		if err != nil {
			return err
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Members lists every family member with passwords blanked for the login picker.
func (srv *sessionService) Members(ctx context.Context) ([]entity.User, error) {
	var members []entity.User

	err := srv.txManager.Execute(ctx, func(store repository.RecordStore) error {
		users, err := store.LoadUsers(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load members")
		}

		members = make([]entity.User, len(users))
		for i, u := range users {
			u.Password = ""
			members[i] = u
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list members", slog.Any("error", err))

		return nil, err
	}

	return members, nil
}

// findUser loads the member list and returns the member with the given ID.
func findUser(ctx context.Context, store repository.RecordStore, userID string) (*entity.User, error) {
	users, err := store.LoadUsers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load members")
	}

	for i := range users {
		if users[i].ID == userID {
			return &users[i], nil
		}
	}

	return nil, domainerrors.ErrUserNotFound
}
