package users

import (
	"net/http"
	"sort"

	"github.com/zhuxinjianbtc-hue/codex-offerwall/catalog"
	"github.com/zhuxinjianbtc-hue/codex-offerwall/core"
	"github.com/zhuxinjianbtc-hue/codex-offerwall/utils"
)

// GET /leaderboard
//
// Seeded competitors plus the session user ranked by coins earned in the
// last seven days, computed from the income side of the ledger.
func (c *Controller) Leaderboard(w http.ResponseWriter, r *http.Request) {
	user := c.app.User(r.Context())
	weekly := core.WeeklyEarned(user, c.app.Now())

	type row struct {
		Nickname  string `json:"nickname"`
		Avatar    string `json:"avatar"`
		Coins     int64  `json:"coins"`
		IsCurrent bool   `json:"isCurrent"`
	}

	rows := []row{}
	for _, seed := range catalog.LeaderboardSeed() {
		rows = append(rows, row{Nickname: seed.Nickname, Avatar: seed.Avatar, Coins: seed.Coins})
	}
	rows = append(rows, row{Nickname: user.Nickname, Avatar: user.Avatar, Coins: weekly, IsCurrent: true})

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Coins > rows[j].Coins
	})

	utils.OK(w, "Successfully", rows)
}
