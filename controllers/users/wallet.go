package users

import (
	"encoding/json"
	"net/http"

	"github.com/zhuxinjianbtc-hue/codex-offerwall/core"
	"github.com/zhuxinjianbtc-hue/codex-offerwall/utils"
)

// GET /wallet
func (c *Controller) Wallet(w http.ResponseWriter, r *http.Request) {
	user := c.app.User(r.Context())
	utils.OK(w, "Successfully", map[string]interface{}{
		"balance":       user.Balance,
		"totalEarned":   user.TotalEarned,
		"totalRedeemed": user.TotalRedeemed,
		"ledger":        user.Ledger,
		"redemptions":   user.Redemptions,
	})
}

// GET /wallet/options
func (c *Controller) RedeemOptions(w http.ResponseWriter, r *http.Request) {
	utils.OK(w, "Successfully", c.app.Options().Options())
}

type redeemRequest struct {
	OptionID string `json:"option_id"`
}

// POST /wallet/redeem
func (c *Controller) Redeem(w http.ResponseWriter, r *http.Request) {
	var req redeemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.OptionID == "" {
		utils.Fail(w, http.StatusBadRequest, "Invalid request", "")
		return
	}

	result := c.app.Redeem(r.Context(), req.OptionID)
	if !result.OK {
		switch result.Code {
		case core.CodeUnknownOption:
			utils.Fail(w, http.StatusNotFound, "Redeem option not found", result.Code)
		case core.CodeInsufficient:
			utils.Fail(w, http.StatusBadRequest, "Not enough coins", result.Code)
		default:
			utils.Fail(w, http.StatusBadRequest, "Redeem rejected", result.Code)
		}
		return
	}

	user := c.app.User(r.Context())
	utils.OK(w, "Redeemed successfully", map[string]interface{}{
		"record":  result.Record,
		"balance": user.Balance,
	})
}
