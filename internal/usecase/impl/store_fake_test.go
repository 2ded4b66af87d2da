package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"canteen/internal/domain/entity"
	"canteen/internal/domain/repository"
	"canteen/internal/domain/service"

	"github.com/pkg/errors"
)

// fakeStore is an in-memory RecordStore for exercising the services without
// a database. Loads return copies so a rolled-back mutation never leaks.
type fakeStore struct {
	users   []entity.User
	dishes  []entity.Dish
	orders  []entity.Order
	session *entity.User

	failSaveUsers  bool
	failSaveOrders bool
}

func (s *fakeStore) LoadUsers(context.Context) ([]entity.User, error) {
	return append([]entity.User{}, s.users...), nil
}

func (s *fakeStore) SaveUsers(_ context.Context, users []entity.User) error {
	if s.failSaveUsers {
		return errors.New("injected save users failure")
	}
	s.users = append([]entity.User{}, users...)

	return nil
}

func (s *fakeStore) LoadDishes(context.Context) ([]entity.Dish, error) {
	return append([]entity.Dish{}, s.dishes...), nil
}

func (s *fakeStore) SaveDishes(_ context.Context, dishes []entity.Dish) error {
	s.dishes = append([]entity.Dish{}, dishes...)

	return nil
}

func (s *fakeStore) LoadOrders(context.Context) ([]entity.Order, error) {
	return append([]entity.Order{}, s.orders...), nil
}

func (s *fakeStore) SaveOrders(_ context.Context, orders []entity.Order) error {
	if s.failSaveOrders {
		return errors.New("injected save orders failure")
	}
	s.orders = append([]entity.Order{}, orders...)

	return nil
}

func (s *fakeStore) LoadSession(context.Context) (*entity.User, error) {
	if s.session == nil {
		return nil, nil
	}
	session := *s.session

	return &session, nil
}

func (s *fakeStore) SaveSession(_ context.Context, user *entity.User) error {
	if user == nil {
		s.session = nil

		return nil
	}
	session := *user
	s.session = &session

	return nil
}

func (s *fakeStore) clone() *fakeStore {
	cloned := &fakeStore{
		users:          append([]entity.User{}, s.users...),
		dishes:         append([]entity.Dish{}, s.dishes...),
		orders:         append([]entity.Order{}, s.orders...),
		failSaveUsers:  s.failSaveUsers,
		failSaveOrders: s.failSaveOrders,
	}
	if s.session != nil {
		session := *s.session
		cloned.session = &session
	}

	return cloned
}

// fakeTxManager mimics the real transaction manager's all-or-nothing
// behavior: a failing callback restores the pre-transaction state.
type fakeTxManager struct {
	store *fakeStore
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(store repository.RecordStore) error) error {
	snapshot := m.store.clone()
	if err := fn(m.store); err != nil {
		*m.store = *snapshot

		return err
	}

	return nil
}

// fakeTokenService issues predictable tokens for session tests.
type fakeTokenService struct{}

func (fakeTokenService) GenerateToken(userID string, _ entity.Role) (string, error) {
	return "token-" + userID, nil
}

func (fakeTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	return &service.Claims{UserID: tokenString}, nil
}

func (fakeTokenService) TokenTTL() time.Duration { return time.Hour }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seedUsers() []entity.User {
	return []entity.User{
		{ID: "1", Name: "爸爸", Password: "admin", Balance: 500, HouseworkCredits: 10, Role: entity.RoleAdmin},
		{ID: "3", Name: "宝贝", Password: "123", Balance: 50, HouseworkCredits: 2, Role: entity.RoleMember},
	}
}

func seedDishes() []entity.Dish {
	return []entity.Dish{
		{
			ID: "d1", Name: "红烧肉", Description: "经典的家常硬菜", Category: "热菜",
			Price: 35, ChorePrice: 2, SupportsBalance: true, SupportsHousework: true,
			TasteOptions: []string{"常规口味", "加辣版"},
		},
		{
			ID: "d3", Name: "蒜蓉油麦菜", Description: "清淡爽口", Category: "素菜",
			Price: 15, ChorePrice: 1, SupportsBalance: true, SupportsHousework: true,
		},
		{
			ID: "d4", Name: "可口可乐", Description: "冰凉畅快", Category: "饮品",
			Price: 3, ChorePrice: 0, SupportsBalance: true, SupportsHousework: false,
		},
	}
}

func newFixture() (*fakeStore, *fakeTxManager) {
	store := &fakeStore{users: seedUsers(), dishes: seedDishes()}

	return store, &fakeTxManager{store: store}
}
