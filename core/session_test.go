package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhuxinjianbtc-hue/codex-offerwall/models"
)

func multiUserStore() *models.Store {
	return &models.Store{
		Version:       models.StoreVersion,
		CurrentUserID: "u2",
		Users: []*models.User{
			{ID: "u1", Email: "a@example.com", Password: "secret1", Nickname: "A"},
			{ID: "u2", Email: "b@example.com", Password: "secret2", Nickname: "B", Balance: 500},
			{ID: "u3", Email: "c@example.com", Password: "secret3", Nickname: "C"},
		},
	}
}

func TestSingleGuestPolicy_CollapsesToOneUser(t *testing.T) {
	store := multiUserStore()
	guest := SingleGuestPolicy{}.Enforce(store, testNow)

	require.NotNil(t, guest)
	require.Len(t, store.Users, 1, "store must hold exactly one user after enforcement")
	assert.True(t, store.Users[0].IsGuest)
	assert.Equal(t, guest.ID, store.CurrentUserID)
}

func TestSingleGuestPolicy_DemotesCurrentUserInPlace(t *testing.T) {
	store := multiUserStore()
	guest := SingleGuestPolicy{}.Enforce(store, testNow)

	assert.Equal(t, "u2", guest.ID, "demotion keeps the identity")
	assert.Empty(t, guest.Email)
	assert.Empty(t, guest.Password)
	assert.True(t, guest.IsGuest)
	assert.Equal(t, int64(500), guest.Balance, "balance survives demotion")
}

func TestSingleGuestPolicy_KeepsExistingGuest(t *testing.T) {
	store := multiUserStore()
	store.Users = append(store.Users, &models.User{ID: "g1", IsGuest: true, Balance: 42})

	guest := SingleGuestPolicy{}.Enforce(store, testNow)
	assert.Equal(t, "g1", guest.ID, "an existing guest wins over the current user")
	require.Len(t, store.Users, 1)
}

func TestSingleGuestPolicy_SynthesizesGuest(t *testing.T) {
	store := &models.Store{Version: models.StoreVersion, Users: []*models.User{}}
	guest := SingleGuestPolicy{}.Enforce(store, testNow)

	assert.Equal(t, GuestID, guest.ID)
	assert.Equal(t, "Guest", guest.Nickname)
	assert.True(t, guest.IsGuest)
	assert.Equal(t, int64(StarterBalance), guest.Balance)
	assert.Equal(t, int64(StarterBalance), guest.TotalEarned)
	require.Len(t, guest.Ledger, 1)
	assert.Equal(t, models.LedgerIncome, guest.Ledger[0].Type)
	assert.Equal(t, int64(StarterBalance), guest.Ledger[0].Amount)
	assert.Equal(t, guest.ID, store.CurrentUserID)
}

func TestSingleGuestPolicy_Idempotent(t *testing.T) {
	store := multiUserStore()
	first := SingleGuestPolicy{}.Enforce(store, testNow)
	second := SingleGuestPolicy{}.Enforce(store, testNow+1000)

	assert.Same(t, first, second)
	require.Len(t, store.Users, 1)
}

func TestMultiUserPolicy_PreservesUsers(t *testing.T) {
	store := multiUserStore()
	current := MultiUserPolicy{}.Enforce(store, testNow)

	assert.Equal(t, "u2", current.ID)
	assert.Len(t, store.Users, 3, "no account may be discarded")
	assert.False(t, current.IsGuest, "no demotion under the multi-user policy")
}

func TestMultiUserPolicy_AppendsGuestWhenSessionEmpty(t *testing.T) {
	store := multiUserStore()
	store.CurrentUserID = ""

	guest := MultiUserPolicy{}.Enforce(store, testNow)
	assert.True(t, guest.IsGuest)
	assert.Len(t, store.Users, 4)
	assert.Equal(t, guest.ID, store.CurrentUserID)
}
