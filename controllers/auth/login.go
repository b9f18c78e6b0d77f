package auth

import (
	"encoding/json"
	"net/http"

	"github.com/zhuxinjianbtc-hue/codex-offerwall/core"
	"github.com/zhuxinjianbtc-hue/codex-offerwall/utils"
)

// POST /auth/login
func (c *Controller) Login(w http.ResponseWriter, r *http.Request) {
	var req core.Credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid request", "")
		return
	}

	result := c.app.Login(r.Context(), req)
	if !result.OK {
		utils.Fail(w, http.StatusUnauthorized, "Email or password is incorrect", result.Code)
		return
	}
	utils.OK(w, "Logged in", sessionView(result.User))
}
