package auth

import (
	"net/http"

	"github.com/zhuxinjianbtc-hue/codex-offerwall/utils"
)

// POST /auth/logout
func (c *Controller) Logout(w http.ResponseWriter, r *http.Request) {
	c.app.Logout(r.Context())
	utils.OK(w, "Logged out", nil)
}
