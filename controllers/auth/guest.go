package auth

import (
	"net/http"

	"github.com/zhuxinjianbtc-hue/codex-offerwall/utils"
)

// POST /auth/guest
func (c *Controller) Guest(w http.ResponseWriter, r *http.Request) {
	result := c.app.LoginGuest(r.Context())
	utils.OK(w, "Guest session ready", sessionView(result.User))
}
