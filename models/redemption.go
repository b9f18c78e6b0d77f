package models

// RedemptionDone is the only redemption status: fulfillment is immediate, no
// asynchronous processing is modeled.
const RedemptionDone = "done"

// RedemptionRecord is one spend of balance against a redeem option. Stored
// newest-first, append-only.
type RedemptionRecord struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Label     string `json:"label"`
	Points    int64  `json:"points"`
	CreatedAt int64  `json:"createdAt"`
	Status    string `json:"status"`
}
