package core

import (
	"github.com/zhuxinjianbtc-hue/codex-offerwall/models"
	"github.com/zhuxinjianbtc-hue/codex-offerwall/utils"
)

const (
	// GuestID is the fixed identity of the synthesized guest account.
	GuestID = "guest_local"
	// StarterBalance seeds every new account, guest or registered.
	StarterBalance = 100
)

// SessionPolicy decides which user owns the session after a bootstrap pass
// and what happens to everyone else in the store.
type SessionPolicy interface {
	Enforce(store *models.Store, now int64) *models.User
}

// SingleGuestPolicy is the default, destructive policy: the store ends up
// holding exactly one guest-flagged user and every other account is
// discarded on the spot. A signed-in identity referenced by currentUserId is
// demoted to guest in place, its email and password cleared. Registered
// accounts therefore survive only until the next bootstrap; that data loss is
// deliberate, swap in MultiUserPolicy to keep them.
type SingleGuestPolicy struct{}

func (SingleGuestPolicy) Enforce(store *models.Store, now int64) *models.User {
	var guest *models.User
	for _, u := range store.Users {
		if u.IsGuest {
			guest = u
			break
		}
	}

	if guest == nil && store.CurrentUserID != "" {
		if current := store.FindUser(store.CurrentUserID); current != nil {
			current.IsGuest = true
			current.Email = ""
			current.Password = ""
			current.Settings.Language = "en"
			guest = current
		}
	}

	if guest == nil {
		guest = NewGuestUser(now)
	}

	store.Users = []*models.User{guest}
	store.CurrentUserID = guest.ID
	return guest
}

// MultiUserPolicy keeps every account. The session sticks to currentUserId
// when it resolves, otherwise an existing guest is reused or a fresh one is
// appended alongside the registered users.
type MultiUserPolicy struct{}

func (MultiUserPolicy) Enforce(store *models.Store, now int64) *models.User {
	if current := store.CurrentUser(); current != nil {
		return current
	}
	for _, u := range store.Users {
		if u.IsGuest {
			store.CurrentUserID = u.ID
			return u
		}
	}
	guest := NewGuestUser(now)
	store.Users = append(store.Users, guest)
	store.CurrentUserID = guest.ID
	return guest
}

// NewGuestUser synthesizes the guest account with the starter balance and
// its matching ledger entry.
func NewGuestUser(now int64) *models.User {
	u := &models.User{
		ID:          GuestID,
		Nickname:    "Guest",
		CreatedAt:   now,
		IsGuest:     true,
		Balance:     StarterBalance,
		TotalEarned: StarterBalance,
		Settings: models.Settings{
			Notifications: true,
			Language:      "en",
		},
		Tasks: []*models.TaskRecord{},
		Ledger: []*models.LedgerEntry{
			{
				ID:          utils.NewID("l"),
				Type:        models.LedgerIncome,
				Amount:      StarterBalance,
				Description: "Guest starter coins",
				CreatedAt:   now,
			},
		},
		Redemptions: []*models.RedemptionRecord{},
	}
	fillIdentity(u, now)
	return u
}
