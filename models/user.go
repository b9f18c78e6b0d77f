package models

// Settings holds per-user preferences.
type Settings struct {
	Notifications bool   `json:"notifications"`
	Language      string `json:"language"`
}

// User is one account in the store. The password is a plaintext demo secret
// and is cleared when the account is demoted to guest. Balance is a cached
// integer that tracks the ledger: income minus expense.
type User struct {
	ID             string              `json:"id"`
	Email          string              `json:"email"`
	Password       string              `json:"password"`
	Nickname       string              `json:"nickname"`
	Avatar         string              `json:"avatar"`
	CreatedAt      int64               `json:"createdAt"`
	IsGuest        bool                `json:"isGuest"`
	Balance        int64               `json:"balance"`
	TotalEarned    int64               `json:"totalEarned"`
	TotalRedeemed  int64               `json:"totalRedeemed"`
	InvitationCode string              `json:"invitationCode"`
	InvitedCount   int64               `json:"invitedCount"`
	Settings       Settings            `json:"settings"`
	Tasks          []*TaskRecord       `json:"tasks"`
	Ledger         []*LedgerEntry      `json:"ledger"`
	Redemptions    []*RedemptionRecord `json:"redemptions"`
}

// Clone returns a deep copy safe to hand to the presentation layer while the
// sweeper keeps mutating the original.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	cp := *u
	cp.Tasks = make([]*TaskRecord, len(u.Tasks))
	for i, r := range u.Tasks {
		rc := *r
		cp.Tasks[i] = &rc
	}
	cp.Ledger = make([]*LedgerEntry, len(u.Ledger))
	for i, e := range u.Ledger {
		ec := *e
		cp.Ledger[i] = &ec
	}
	cp.Redemptions = make([]*RedemptionRecord, len(u.Redemptions))
	for i, r := range u.Redemptions {
		rc := *r
		cp.Redemptions[i] = &rc
	}
	return &cp
}
