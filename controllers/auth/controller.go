package auth

import (
	"github.com/zhuxinjianbtc-hue/codex-offerwall/core"
	"github.com/zhuxinjianbtc-hue/codex-offerwall/models"
)

// Controller serves the register/login/guest/logout flows. Under the default
// single-guest session policy the identities these create survive only until
// the next bootstrap enforcement; the endpoints exist for API compatibility
// and for deployments running the multi-user policy.
type Controller struct {
	app *core.App
}

func NewController(app *core.App) *Controller {
	return &Controller{app: app}
}

func sessionView(u *models.User) map[string]interface{} {
	if u == nil {
		return nil
	}
	return map[string]interface{}{
		"id":       u.ID,
		"email":    u.Email,
		"nickname": u.Nickname,
		"avatar":   u.Avatar,
		"isGuest":  u.IsGuest,
		"balance":  u.Balance,
	}
}
