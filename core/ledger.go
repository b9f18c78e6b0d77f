package core

import (
	"github.com/zhuxinjianbtc-hue/codex-offerwall/catalog"
	"github.com/zhuxinjianbtc-hue/codex-offerwall/models"
	"github.com/zhuxinjianbtc-hue/codex-offerwall/utils"
)

// AddLedgerEntry prepends a normalized entry to the user's ledger (newest
// first). It never touches the balance; the caller applies the matching
// delta in the same operation.
func AddLedgerEntry(user *models.User, entry *models.LedgerEntry, now int64) {
	if user == nil || entry == nil {
		return
	}
	if entry.ID == "" {
		entry.ID = utils.NewID("l")
	}
	if entry.Type == "" {
		entry.Type = models.LedgerIncome
	}
	if entry.Description == "" {
		entry.Description = "Coin change"
	}
	if entry.CreatedAt == 0 {
		entry.CreatedAt = now
	}
	user.Ledger = append([]*models.LedgerEntry{entry}, user.Ledger...)
}

// RedeemResult reports a redemption attempt.
type RedeemResult struct {
	OK     bool
	Code   string
	Record *models.RedemptionRecord
}

// Redeem spends option.MinimumPoints from the user's balance. With
// insufficient balance nothing mutates and the insufficient code is
// returned. Otherwise the balance decrement, totalRedeemed increment,
// redemption record and expense ledger entry are applied as one unit.
func Redeem(user *models.User, option catalog.RedeemOption, now int64) RedeemResult {
	if user == nil {
		return RedeemResult{}
	}
	if user.Balance < option.MinimumPoints {
		return RedeemResult{Code: CodeInsufficient}
	}

	user.Balance -= option.MinimumPoints
	user.TotalRedeemed += option.MinimumPoints

	record := &models.RedemptionRecord{
		ID:        utils.NewID("rd"),
		Type:      option.ID,
		Label:     option.Label,
		Points:    option.MinimumPoints,
		CreatedAt: now,
		Status:    models.RedemptionDone,
	}
	user.Redemptions = append([]*models.RedemptionRecord{record}, user.Redemptions...)

	AddLedgerEntry(user, &models.LedgerEntry{
		Type:        models.LedgerExpense,
		Amount:      option.MinimumPoints,
		Description: "Redeem: " + option.Label,
		CreatedAt:   now,
	}, now)

	return RedeemResult{OK: true, Record: record}
}

// LedgerBalance recomputes the balance from the ledger: income minus
// expense. In a healthy store it equals the cached User.Balance; the
// invariant is checked in tests, not enforced at runtime.
func LedgerBalance(user *models.User) int64 {
	var total int64
	for _, e := range user.Ledger {
		switch e.Type {
		case models.LedgerIncome:
			total += e.Amount
		case models.LedgerExpense:
			total -= e.Amount
		}
	}
	return total
}

// WeeklyEarned sums income entries from the last seven days. Feeds the
// leaderboard.
func WeeklyEarned(user *models.User, now int64) int64 {
	const weekMillis = 7 * 24 * 60 * 60 * 1000
	cutoff := now - weekMillis
	var total int64
	for _, e := range user.Ledger {
		if e.Type == models.LedgerIncome && e.CreatedAt >= cutoff {
			total += e.Amount
		}
	}
	return total
}
