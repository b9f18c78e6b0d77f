package models

// Ledger entry types. Amount is always a signless magnitude; the type decides
// the direction.
const (
	LedgerIncome  = "income"
	LedgerExpense = "expense"
)

// LedgerEntry is one balance-affecting event. The ledger is append-only and
// stored newest-first; entries are never mutated or deleted.
type LedgerEntry struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	CreatedAt   int64  `json:"createdAt"`
}
