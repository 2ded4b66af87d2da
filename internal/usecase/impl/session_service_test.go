package impl

import (
	"context"
	"testing"

	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionFixture(t *testing.T) (*fakeStore, usecase.CartUsecase, usecase.SessionUsecase) {
	t.Helper()
	store, tm := newFixture()
	cart := NewCartService(tm, discardLogger())

	return store, cart, NewSessionService(tm, fakeTokenService{}, cart, discardLogger())
}

func TestSessionService_LoginSucceeds(t *testing.T) {
	store, _, session := newSessionFixture(t)

	output, err := session.Login(context.Background(), usecase.LoginInput{Name: "爸爸", Password: "admin"})
	require.NoError(t, err)

	assert.Equal(t, "token-1", output.Token)
	assert.Equal(t, "1", output.User.ID)
	require.NotNil(t, store.session)
	assert.Equal(t, "1", store.session.ID)
}

func TestSessionService_LoginWrongPassword(t *testing.T) {
	store, _, session := newSessionFixture(t)

	_, err := session.Login(context.Background(), usecase.LoginInput{Name: "爸爸", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, store.session)
}

func TestSessionService_LoginUnknownMember(t *testing.T) {
	_, _, session := newSessionFixture(t)

	_, err := session.Login(context.Background(), usecase.LoginInput{Name: "陌生人", Password: "123"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSessionService_LogoutClearsSessionAndCart(t *testing.T) {
	store, cart, session := newSessionFixture(t)
	ctx := context.Background()

	_, err := session.Login(ctx, usecase.LoginInput{Name: "爸爸", Password: "admin"})
	require.NoError(t, err)
	_, err = cart.Add(ctx, "1", usecase.AddToCartInput{DishID: "d1"})
	require.NoError(t, err)

	require.NoError(t, session.Logout(ctx, "1"))

	assert.Nil(t, store.session)
	view, err := cart.Get(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
}

func TestSessionService_CurrentReadsFreshBalances(t *testing.T) {
	store, _, session := newSessionFixture(t)

	store.users[0].Balance = 430

	user, err := session.Current(context.Background(), "1")
	require.NoError(t, err)
	assert.InDelta(t, 430.0, user.Balance, 1e-9)
}

func TestSessionService_CurrentUnknownMember(t *testing.T) {
	_, _, session := newSessionFixture(t)

	_, err := session.Current(context.Background(), "missing")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestSessionService_MembersBlanksPasswords(t *testing.T) {
	_, _, session := newSessionFixture(t)

	members, err := session.Members(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 2)
	for _, member := range members {
		assert.Empty(t, member.Password)
	}
}
