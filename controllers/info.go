package controllers

import (
	"net/http"
	"time"

	"github.com/zhuxinjianbtc-hue/codex-offerwall/models"
	"github.com/zhuxinjianbtc-hue/codex-offerwall/utils"
)

// GET /info
func InfoHandler(w http.ResponseWriter, r *http.Request) {
	utils.OK(w, "Successfully", map[string]interface{}{
		"service":      "offerwall-api",
		"storeVersion": models.StoreVersion,
		"timestamp":    time.Now().Unix(),
	})
}
