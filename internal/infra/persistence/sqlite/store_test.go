package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"canteen/config"
	"canteen/internal/domain/entity"
	"canteen/internal/domain/repository"
	"canteen/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestStore(t *testing.T) (repository.RecordStore, *gorm.DB) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Path = filepath.Join(t.TempDir(), "canteen.db")

	db, err := Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())
	})

	return NewRecordStore(db), db
}

func TestRecordStore_MissingRecordsFallBackToSeeds(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	users, err := store.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultUsers(), users)

	dishes, err := store.LoadDishes(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultDishes(), dishes)

	orders, err := store.LoadOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	session, err := store.LoadSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestRecordStore_RoundTripEquality(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	users := []entity.User{
		{ID: "1", Name: "爸爸", Password: "admin", Balance: 430, HouseworkCredits: 10, Role: entity.RoleAdmin},
		{ID: "9", Name: "爷爷", Password: "888", Balance: 12.5, HouseworkCredits: 3, Role: entity.RoleMember},
	}
	require.NoError(t, store.SaveUsers(ctx, users))

	orders := []entity.Order{
		{
			ID:            "o1",
			UserID:        "1",
			UserName:      "爸爸",
			DishID:        "d1",
			DishName:      "红烧肉",
			Quantity:      2,
			PaymentMethod: entity.PaymentBalance,
			TotalCost:     70,
			Status:        entity.StatusPending,
			Timestamp:     1700000000000,
			SelectedTaste: "加辣版",
			Note:          "不要太肥",
		},
	}
	require.NoError(t, store.SaveOrders(ctx, orders))

	gotUsers, err := store.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, users, gotUsers)

	gotOrders, err := store.LoadOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, orders, gotOrders)
}

func TestRecordStore_SaveOverwritesExistingRecord(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveDishes(ctx, DefaultDishes()))
	trimmed := DefaultDishes()[:1]
	require.NoError(t, store.SaveDishes(ctx, trimmed))

	got, err := store.LoadDishes(ctx)
	require.NoError(t, err)
	assert.Equal(t, trimmed, got)
}

func TestRecordStore_CorruptRecordFallsBackToSeeds(t *testing.T) {
	store, db := openTestStore(t)
	ctx := context.Background()

	corrupt := model.RecordModel{Name: repository.RecordUsers, Body: []byte("{not json")}
	require.NoError(t, db.Create(&corrupt).Error)

	users, err := store.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultUsers(), users)
}

func TestRecordStore_SessionSaveAndClear(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	user := entity.User{ID: "3", Name: "宝贝", Balance: 50, HouseworkCredits: 2, Role: entity.RoleMember}
	require.NoError(t, store.SaveSession(ctx, &user))

	got, err := store.LoadSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user, *got)

	require.NoError(t, store.SaveSession(ctx, nil))

	got, err = store.LoadSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	_, db := openTestStore(t)
	ctx := context.Background()

	tm := NewTransactionManager(db)
	wantErr := assert.AnError
	err := tm.Execute(ctx, func(store repository.RecordStore) error {
		if err := store.SaveUsers(ctx, []entity.User{{ID: "x", Name: "临时"}}); err != nil {
			return err
		}

		return wantErr
	})
	require.ErrorIs(t, err, wantErr)

	users, err := NewRecordStore(db).LoadUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultUsers(), users, "rolled-back write must not be visible")
}

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	_, db := openTestStore(t)
	ctx := context.Background()

	tm := NewTransactionManager(db)
	users := []entity.User{{ID: "1", Name: "爸爸", Balance: 430, Role: entity.RoleAdmin}}
	orders := []entity.Order{{ID: "o1", UserID: "1", Status: entity.StatusPending}}
	require.NoError(t, tm.Execute(ctx, func(store repository.RecordStore) error {
		if err := store.SaveUsers(ctx, users); err != nil {
			return err
		}

		return store.SaveOrders(ctx, orders)
	}))

	store := NewRecordStore(db)
	gotUsers, err := store.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, users, gotUsers)

	gotOrders, err := store.LoadOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, orders, gotOrders)
}
