// Package core implements the task lifecycle and ledger state machine: store
// normalization, session policy, the task record tracker, the approval
// sweeper and the redemption engine. It holds no package-level state; every
// operation takes the store (or a user inside it) explicitly.
package core

import (
	"encoding/json"

	"github.com/zhuxinjianbtc-hue/codex-offerwall/models"
	"github.com/zhuxinjianbtc-hue/codex-offerwall/utils"
)

// StorageKey is the fixed key the store blob lives under.
const StorageKey = "game_offer_wall_store_v1"

var defaultAvatars = []string{"😎", "🕹️", "🎮", "🚀", "🐉", "🏆", "🧠", "🎯", "🛡️", "⚔️"}

// NormalizeStore repairs a persisted blob into a well-formed store. It never
// fails: malformed JSON, a missing key, foreign versions and junk fields all
// collapse to defaults. A currentUserId that matches no user becomes empty.
func NormalizeStore(data []byte, now int64) *models.Store {
	store := &models.Store{
		Version: models.StoreVersion,
		Users:   []*models.User{},
	}
	if len(data) == 0 {
		return store
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return store
	}

	var rawUsers []json.RawMessage
	if err := json.Unmarshal(raw["users"], &rawUsers); err == nil {
		for _, ru := range rawUsers {
			store.Users = append(store.Users, normalizeUser(ru, now))
		}
	}

	var currentID string
	_ = json.Unmarshal(raw["currentUserId"], &currentID)
	if store.FindUser(currentID) != nil {
		store.CurrentUserID = currentID
	}

	return store
}

// normalizeUser rebuilds one user into the canonical shape. Each field falls
// back independently, so a single corrupt field never discards the rest of
// the account.
func normalizeUser(data []byte, now int64) *models.User {
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil || m == nil {
		m = map[string]interface{}{}
	}

	balance := intField(m, "balance", 0)
	u := &models.User{
		ID:             strField(m, "id", ""),
		Email:          strField(m, "email", ""),
		Password:       strField(m, "password", ""),
		Nickname:       strField(m, "nickname", "Player"),
		Avatar:         strField(m, "avatar", ""),
		CreatedAt:      intField(m, "createdAt", now),
		IsGuest:        boolField(m, "isGuest", false),
		Balance:        balance,
		TotalEarned:    intField(m, "totalEarned", balance),
		TotalRedeemed:  intField(m, "totalRedeemed", 0),
		InvitationCode: strField(m, "invitationCode", ""),
		InvitedCount:   intField(m, "invitedCount", 0),
		Settings: models.Settings{
			Notifications: true,
			Language:      "en",
		},
	}
	if settings, ok := m["settings"].(map[string]interface{}); ok {
		u.Settings.Notifications = boolField(settings, "notifications", true)
	}

	fillIdentity(u, now)

	u.Tasks = sliceField[models.TaskRecord](m, "tasks")
	u.Ledger = sliceField[models.LedgerEntry](m, "ledger")
	u.Redemptions = sliceField[models.RedemptionRecord](m, "redemptions")

	return u
}

// fillIdentity synthesizes the fields every user must have.
func fillIdentity(u *models.User, now int64) {
	if u.ID == "" {
		u.ID = utils.NewID("u")
	}
	if u.Nickname == "" {
		u.Nickname = "Player"
	}
	if u.Avatar == "" {
		u.Avatar = utils.Pick(defaultAvatars)
	}
	if u.CreatedAt == 0 {
		u.CreatedAt = now
	}
	if u.InvitationCode == "" {
		u.InvitationCode = utils.NewInviteCode()
	}
	if u.Settings.Language == "" {
		u.Settings.Language = "en"
	}
}

func strField(m map[string]interface{}, key, def string) string {
	if s, ok := m[key].(string); ok && s != "" {
		return s
	}
	return def
}

func intField(m map[string]interface{}, key string, def int64) int64 {
	switch v := m[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	}
	return def
}

func boolField(m map[string]interface{}, key string, def bool) bool {
	if b, ok := m[key].(bool); ok {
		return b
	}
	return def
}

// sliceField re-decodes a nested array into its typed form; anything that is
// not a valid array of T becomes empty.
func sliceField[T any](m map[string]interface{}, key string) []*T {
	out := []*T{}
	raw, ok := m[key]
	if !ok {
		return out
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return out
	}
	var typed []*T
	if err := json.Unmarshal(data, &typed); err != nil {
		return out
	}
	for _, item := range typed {
		if item != nil {
			out = append(out, item)
		}
	}
	return out
}
