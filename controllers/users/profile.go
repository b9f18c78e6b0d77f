package users

import (
	"encoding/json"
	"net/http"

	"github.com/zhuxinjianbtc-hue/codex-offerwall/core"
	"github.com/zhuxinjianbtc-hue/codex-offerwall/utils"
)

// GET /profile
func (c *Controller) Profile(w http.ResponseWriter, r *http.Request) {
	utils.OK(w, "Successfully", userView(c.app.User(r.Context())))
}

// PUT /profile
func (c *Controller) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var patch core.ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid request", "")
		return
	}
	user := c.app.UpdateProfile(r.Context(), patch)
	utils.OK(w, "Profile updated", userView(user))
}
