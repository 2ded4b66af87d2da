package sqlite

import (
	"context"
	"encoding/json"

	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// recordStore implements repository.RecordStore over the records table.
// Each named record holds one JSON document; an absent or unparseable body
// falls back to the built-in defaults, never to an error, matching the
// recovery behavior the household data grew up with.
type recordStore struct {
	db *gorm.DB
}

// NewRecordStore is the constructor for recordStore.
func NewRecordStore(db *gorm.DB) repository.RecordStore {
	return &recordStore{db: db}
}

// LoadUsers returns the persisted member list, or the seed members.
func (s *recordStore) LoadUsers(ctx context.Context) ([]entity.User, error) {
	body, found, err := s.loadRecord(ctx, repository.RecordUsers)
	if err != nil {
		return nil, err
	}
	if !found {
		return DefaultUsers(), nil
	}

	var users []entity.User
	if err := json.Unmarshal(body, &users); err != nil {
		return DefaultUsers(), nil
	}

	return users, nil
}

// SaveUsers writes the full member list through to storage.
func (s *recordStore) SaveUsers(ctx context.Context, users []entity.User) error {
	return s.saveRecord(ctx, repository.RecordUsers, users)
}

// LoadDishes returns the persisted menu, or the seed menu.
func (s *recordStore) LoadDishes(ctx context.Context) ([]entity.Dish, error) {
	body, found, err := s.loadRecord(ctx, repository.RecordDishes)
	if err != nil {
		return nil, err
	}
	if !found {
		return DefaultDishes(), nil
	}

	var dishes []entity.Dish
	if err := json.Unmarshal(body, &dishes); err != nil {
		return DefaultDishes(), nil
	}

	return dishes, nil
}

// SaveDishes writes the full menu through to storage.
func (s *recordStore) SaveDishes(ctx context.Context, dishes []entity.Dish) error {
	return s.saveRecord(ctx, repository.RecordDishes, dishes)
}

// LoadOrders returns the persisted order log.
func (s *recordStore) LoadOrders(ctx context.Context) ([]entity.Order, error) {
	body, found, err := s.loadRecord(ctx, repository.RecordOrders)
	if err != nil {
		return nil, err
	}
	if !found {
		return []entity.Order{}, nil
	}

	var orders []entity.Order
	if err := json.Unmarshal(body, &orders); err != nil {
		return []entity.Order{}, nil
	}

	return orders, nil
}

// SaveOrders writes the full order log through to storage.
func (s *recordStore) SaveOrders(ctx context.Context, orders []entity.Order) error {
	return s.saveRecord(ctx, repository.RecordOrders, orders)
}

// LoadSession returns the persisted session user, or nil when logged out.
func (s *recordStore) LoadSession(ctx context.Context) (*entity.User, error) {
	body, found, err := s.loadRecord(ctx, repository.RecordSession)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var user entity.User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, nil
	}

	return &user, nil
}

// SaveSession writes the session user; nil clears the record.
func (s *recordStore) SaveSession(ctx context.Context, user *entity.User) error {
	if user == nil {
		result := s.db.WithContext(ctx).
			Where("name = ?", repository.RecordSession).
			Delete(&model.RecordModel{})
		if result.Error != nil {
			return domainerrors.NewStorageError(result.Error, "failed to clear session record")
		}

		return nil
	}

	return s.saveRecord(ctx, repository.RecordSession, user)
}

// loadRecord reads one named record body. found is false when the record
// does not exist; real database failures are returned as storage errors.
func (s *recordStore) loadRecord(ctx context.Context, name string) (body []byte, found bool, err error) {
	var record model.RecordModel
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}

		return nil, false, domainerrors.NewStorageError(err, "failed to load record "+name)
	}

	return record.Body, true, nil
}

// saveRecord upserts one named record with its JSON body.
func (s *recordStore) saveRecord(ctx context.Context, name string, value any) error {
	body, err := json.Marshal(value)
	if err != nil {
		return domainerrors.NewStorageError(err, "failed to encode record "+name)
	}

	record := model.RecordModel{Name: name, Body: body}
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"body", "updated_at"}),
		}).
		Create(&record)
	if result.Error != nil {
		return domainerrors.NewStorageError(result.Error, "failed to save record "+name)
	}

	return nil
}
