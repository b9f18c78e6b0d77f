package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhuxinjianbtc-hue/codex-offerwall/models"
)

const testNow = int64(1_700_000_000_000)

func TestNormalizeStore_EmptyInput(t *testing.T) {
	store := NormalizeStore(nil, testNow)
	require.NotNil(t, store)
	assert.Equal(t, models.StoreVersion, store.Version)
	assert.Empty(t, store.Users)
	assert.Empty(t, store.CurrentUserID)
}

func TestNormalizeStore_MalformedJSON(t *testing.T) {
	store := NormalizeStore([]byte("{not json"), testNow)
	require.NotNil(t, store)
	assert.Empty(t, store.Users)
}

func TestNormalizeStore_UsersNotArray(t *testing.T) {
	store := NormalizeStore([]byte(`{"version":1,"users":"junk","currentUserId":"u1"}`), testNow)
	assert.Empty(t, store.Users)
	assert.Empty(t, store.CurrentUserID, "currentUserId must not survive without a matching user")
}

func TestNormalizeStore_DanglingCurrentUserID(t *testing.T) {
	blob := `{"version":1,"users":[{"id":"u1","nickname":"A"}],"currentUserId":"nope"}`
	store := NormalizeStore([]byte(blob), testNow)
	require.Len(t, store.Users, 1)
	assert.Empty(t, store.CurrentUserID)
}

func TestNormalizeStore_MatchingCurrentUserID(t *testing.T) {
	blob := `{"version":1,"users":[{"id":"u1"}],"currentUserId":"u1"}`
	store := NormalizeStore([]byte(blob), testNow)
	assert.Equal(t, "u1", store.CurrentUserID)
}

func TestNormalizeStore_ForeignVersionPinned(t *testing.T) {
	store := NormalizeStore([]byte(`{"version":99,"users":[]}`), testNow)
	assert.Equal(t, models.StoreVersion, store.Version)
}

func TestNormalizeUser_Defaults(t *testing.T) {
	store := NormalizeStore([]byte(`{"users":[{}]}`), testNow)
	require.Len(t, store.Users, 1)
	u := store.Users[0]

	assert.NotEmpty(t, u.ID, "missing id must be synthesized")
	assert.Equal(t, "Player", u.Nickname)
	assert.NotEmpty(t, u.Avatar)
	assert.NotEmpty(t, u.InvitationCode)
	assert.Equal(t, testNow, u.CreatedAt)
	assert.Zero(t, u.Balance)
	assert.Zero(t, u.TotalRedeemed)
	assert.False(t, u.IsGuest)
	assert.True(t, u.Settings.Notifications)
	assert.Equal(t, "en", u.Settings.Language)
	assert.NotNil(t, u.Tasks)
	assert.NotNil(t, u.Ledger)
	assert.NotNil(t, u.Redemptions)
}

func TestNormalizeUser_TotalEarnedDefaultsToBalance(t *testing.T) {
	store := NormalizeStore([]byte(`{"users":[{"id":"u1","balance":250}]}`), testNow)
	require.Len(t, store.Users, 1)
	assert.Equal(t, int64(250), store.Users[0].Balance)
	assert.Equal(t, int64(250), store.Users[0].TotalEarned)
}

func TestNormalizeUser_CorruptNestedArrays(t *testing.T) {
	blob := `{"users":[{"id":"u1","tasks":"garbage","ledger":42,"redemptions":{}}]}`
	store := NormalizeStore([]byte(blob), testNow)
	require.Len(t, store.Users, 1)
	u := store.Users[0]
	assert.Empty(t, u.Tasks)
	assert.Empty(t, u.Ledger)
	assert.Empty(t, u.Redemptions)
}

func TestNormalizeStore_RoundTrip(t *testing.T) {
	original := &models.Store{
		Version:       models.StoreVersion,
		CurrentUserID: "u1",
		Users: []*models.User{
			{
				ID:             "u1",
				Nickname:       "Keeper",
				Avatar:         "🏆",
				CreatedAt:      testNow - 1000,
				IsGuest:        true,
				Balance:        320,
				TotalEarned:    420,
				TotalRedeemed:  100,
				InvitationCode: "ABC123",
				Settings:       models.Settings{Notifications: false, Language: "en"},
				Tasks: []*models.TaskRecord{
					{ID: "tr_1", TaskID: "t1", Reward: 50, Status: models.TaskPending, StartedAt: testNow - 900, SubmittedAt: testNow - 800, UpdatedAt: testNow - 800},
				},
				Ledger: []*models.LedgerEntry{
					{ID: "l_1", Type: models.LedgerIncome, Amount: 100, Description: "Guest starter coins", CreatedAt: testNow - 1000},
				},
				Redemptions: []*models.RedemptionRecord{
					{ID: "rd_1", Type: "paypal_5", Label: "PayPal $5", Points: 500, CreatedAt: testNow - 500, Status: models.RedemptionDone},
				},
			},
		},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	store := NormalizeStore(data, testNow)
	require.Len(t, store.Users, 1)
	u := store.Users[0]

	assert.Equal(t, "u1", store.CurrentUserID)
	assert.Equal(t, "Keeper", u.Nickname)
	assert.Equal(t, int64(320), u.Balance)
	assert.Equal(t, int64(420), u.TotalEarned)
	assert.Equal(t, int64(100), u.TotalRedeemed)
	assert.False(t, u.Settings.Notifications)
	require.Len(t, u.Tasks, 1)
	assert.Equal(t, models.TaskPending, u.Tasks[0].Status)
	assert.Equal(t, testNow-800, u.Tasks[0].SubmittedAt)
	require.Len(t, u.Ledger, 1)
	require.Len(t, u.Redemptions, 1)
}
