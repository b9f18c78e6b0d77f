package users

import (
	"github.com/zhuxinjianbtc-hue/codex-offerwall/core"
	"github.com/zhuxinjianbtc-hue/codex-offerwall/models"
)

// Controller serves the user-facing endpoints. It holds the app handle
// explicitly; there is no package-level state.
type Controller struct {
	app *core.App
}

func NewController(app *core.App) *Controller {
	return &Controller{app: app}
}

// userView is the public projection of an account. The password never
// leaves the store blob.
func userView(u *models.User) map[string]interface{} {
	if u == nil {
		return nil
	}
	return map[string]interface{}{
		"id":             u.ID,
		"email":          u.Email,
		"nickname":       u.Nickname,
		"avatar":         u.Avatar,
		"createdAt":      u.CreatedAt,
		"isGuest":        u.IsGuest,
		"balance":        u.Balance,
		"totalEarned":    u.TotalEarned,
		"totalRedeemed":  u.TotalRedeemed,
		"invitationCode": u.InvitationCode,
		"invitedCount":   u.InvitedCount,
		"settings":       u.Settings,
	}
}
