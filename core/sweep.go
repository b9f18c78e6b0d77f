package core

import (
	"fmt"

	"github.com/zhuxinjianbtc-hue/codex-offerwall/catalog"
	"github.com/zhuxinjianbtc-hue/codex-offerwall/models"
)

// ApprovalDelayMillis is the simulated review latency: a pending record
// becomes eligible for auto-approval once this much time has passed since
// submission.
const ApprovalDelayMillis = 5000

// SweepResult reports what one sweep pass changed. RewardDelta maps user id
// to the total coins credited to that user during the pass.
type SweepResult struct {
	Changed     bool
	RewardDelta map[string]int64
}

// Sweep scans every user's pending records and approves the ones whose
// submission is at least ApprovalDelayMillis old. Records referencing a task
// id missing from the catalog are skipped without a transition or an error.
// The sweep is re-entrant: with no newly eligible records it mutates nothing
// and reports Changed=false.
func Sweep(store *models.Store, tasks catalog.TaskCatalog, now int64) SweepResult {
	result := SweepResult{RewardDelta: map[string]int64{}}
	if store == nil {
		return result
	}

	for _, user := range store.Users {
		for _, record := range user.Tasks {
			if record.Status != models.TaskPending {
				continue
			}
			if record.SubmittedAt == 0 || now-record.SubmittedAt < ApprovalDelayMillis {
				continue
			}
			task, ok := tasks.FindTask(record.TaskID)
			if !ok {
				continue
			}
			if approveRecord(user, record, task, now) {
				result.Changed = true
				result.RewardDelta[user.ID] += task.Reward
			}
		}
	}
	return result
}

// approveRecord moves a pending record to approved and, exactly once per
// record, pays the reward: the rewarded latch, the balance and totalEarned
// increments and the income ledger entry are one step, never observable
// separately.
func approveRecord(user *models.User, record *models.TaskRecord, task catalog.Task, now int64) bool {
	if record.Status != models.TaskPending {
		return false
	}

	record.Status = models.TaskApproved
	record.CompletedAt = now
	record.UpdatedAt = now

	if !record.Rewarded {
		record.Rewarded = true
		user.Balance += task.Reward
		user.TotalEarned += task.Reward
		AddLedgerEntry(user, &models.LedgerEntry{
			Type:        models.LedgerIncome,
			Amount:      task.Reward,
			Description: fmt.Sprintf("Task reward: %s", taskLabel(task)),
			CreatedAt:   now,
		}, now)
	}
	return true
}

func taskLabel(task catalog.Task) string {
	if task.Name != "" {
		return task.Name
	}
	return task.ID
}
