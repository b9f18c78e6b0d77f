package core

import (
	"regexp"
	"strings"

	"github.com/zhuxinjianbtc-hue/codex-offerwall/models"
	"github.com/zhuxinjianbtc-hue/codex-offerwall/utils"
)

// Auth result codes.
const (
	CodeInvalidEmail    = "invalidEmail"
	CodeInvalidPassword = "invalidPassword"
	CodeEmailExists     = "emailExists"
	CodeLoginFailed     = "loginFailed"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether the address has a plausible user@host.tld
// shape. No deliverability check.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// AuthResult reports an auth flow outcome.
type AuthResult struct {
	OK   bool
	Code string
	User *models.User
}

// Credentials is the register/login request payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

// Register creates a non-guest account seeded with the starter balance and a
// "New user bonus" ledger entry, and makes it the current session. Under the
// default single-guest policy the account only survives until the next
// bootstrap enforcement pass.
func Register(store *models.Store, payload Credentials, now int64) AuthResult {
	email := strings.ToLower(strings.TrimSpace(payload.Email))
	nickname := strings.TrimSpace(payload.Nickname)

	if !IsValidEmail(email) {
		return AuthResult{Code: CodeInvalidEmail}
	}
	if len(payload.Password) < 6 {
		return AuthResult{Code: CodeInvalidPassword}
	}
	for _, u := range store.Users {
		if !u.IsGuest && strings.ToLower(u.Email) == email {
			return AuthResult{Code: CodeEmailExists}
		}
	}

	if nickname == "" {
		nickname = "Player"
	}
	user := &models.User{
		Email:       email,
		Password:    payload.Password,
		Nickname:    nickname,
		CreatedAt:   now,
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
				Description: "New user bonus",
				CreatedAt:   now,
			},
		},
		Redemptions: []*models.RedemptionRecord{},
	}
	fillIdentity(user, now)

	store.Users = append(store.Users, user)
	store.CurrentUserID = user.ID
	return AuthResult{OK: true, User: user}
}

// Login matches email and password against the non-guest accounts.
func Login(store *models.Store, payload Credentials, now int64) AuthResult {
	email := strings.ToLower(strings.TrimSpace(payload.Email))

	for _, u := range store.Users {
		if !u.IsGuest && strings.ToLower(u.Email) == email && u.Password == payload.Password {
			store.CurrentUserID = u.ID
			return AuthResult{OK: true, User: u}
		}
	}
	return AuthResult{Code: CodeLoginFailed}
}

// LoginGuest reuses the existing guest account or synthesizes one.
func LoginGuest(store *models.Store, now int64) AuthResult {
	for _, u := range store.Users {
		if u.IsGuest {
			store.CurrentUserID = u.ID
			return AuthResult{OK: true, User: u}
		}
	}
	guest := NewGuestUser(now)
	store.Users = append(store.Users, guest)
	store.CurrentUserID = guest.ID
	return AuthResult{OK: true, User: guest}
}

// Logout clears the session pointer. The account itself stays in the store
// until the session policy next decides its fate.
func Logout(store *models.Store) {
	store.CurrentUserID = ""
}
