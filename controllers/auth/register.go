package auth

import (
	"encoding/json"
	"net/http"

	"github.com/zhuxinjianbtc-hue/codex-offerwall/core"
	"github.com/zhuxinjianbtc-hue/codex-offerwall/utils"
)

// POST /auth/register
func (c *Controller) Register(w http.ResponseWriter, r *http.Request) {
	var req core.Credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid request", "")
		return
	}

	result := c.app.Register(r.Context(), req)
	if !result.OK {
		switch result.Code {
		case core.CodeInvalidEmail:
			utils.Fail(w, http.StatusBadRequest, "Email address is not valid", result.Code)
		case core.CodeInvalidPassword:
			utils.Fail(w, http.StatusBadRequest, "Password must be at least 6 characters", result.Code)
		case core.CodeEmailExists:
			utils.Fail(w, http.StatusConflict, "Email already registered", result.Code)
		default:
			utils.Fail(w, http.StatusBadRequest, "Registration rejected", result.Code)
		}
		return
	}
	utils.OK(w, "Registered successfully", sessionView(result.User))
}
