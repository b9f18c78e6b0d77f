package core

import (
	"github.com/zhuxinjianbtc-hue/codex-offerwall/catalog"
	"github.com/zhuxinjianbtc-hue/codex-offerwall/models"
	"github.com/zhuxinjianbtc-hue/codex-offerwall/utils"
)

// Result codes for expected rejections. These travel in response envelopes;
// they are never Go errors.
const (
	CodeAlreadyStarted  = "alreadyStarted"
	CodeAlreadyPending  = "alreadyPending"
	CodeAlreadyApproved = "alreadyApproved"
	CodeInsufficient    = "insufficient"
	CodeUnknownTask     = "unknownTask"
	CodeUnknownOption   = "unknownOption"
)

// GetRecord returns the user's record for the task, or nil. Pure lookup.
func GetRecord(user *models.User, taskID string) *models.TaskRecord {
	if user == nil {
		return nil
	}
	for _, r := range user.Tasks {
		if r.TaskID == taskID {
			return r
		}
	}
	return nil
}

// StartTask creates an in_progress record for the task, snapshotting its
// reward. It fails closed when a record already exists: no mutation, false.
func StartTask(user *models.User, task catalog.Task, now int64) bool {
	if user == nil {
		return false
	}
	if GetRecord(user, task.ID) != nil {
		return false
	}
	addTaskRecord(user, task, models.TaskInProgress, now)
	return true
}

func addTaskRecord(user *models.User, task catalog.Task, status models.TaskStatus, now int64) *models.TaskRecord {
	record := &models.TaskRecord{
		ID:        utils.NewID("tr"),
		TaskID:    task.ID,
		Reward:    task.Reward,
		Status:    status,
		StartedAt: now,
		UpdatedAt: now,
	}
	user.Tasks = append([]*models.TaskRecord{record}, user.Tasks...)
	return record
}

// SubmitResult reports a submit transition. On rejection Code names the
// guard that fired and Record is the untouched existing record.
type SubmitResult struct {
	OK     bool
	Code   string
	Record *models.TaskRecord
}

// SubmitTask moves the user's record for the task to pending. When no record
// exists one is created first, so a submit without a prior start performs
// the full none -> in_progress -> pending transition in one call. Approved
// and pending records are guarded: no mutation, a result code instead.
func SubmitTask(user *models.User, task catalog.Task, now int64) SubmitResult {
	if user == nil {
		return SubmitResult{}
	}

	record := GetRecord(user, task.ID)
	if record == nil {
		record = addTaskRecord(user, task, models.TaskInProgress, now)
	}

	switch record.Status {
	case models.TaskApproved:
		return SubmitResult{Code: CodeAlreadyApproved, Record: record}
	case models.TaskPending:
		return SubmitResult{Code: CodeAlreadyPending, Record: record}
	}

	record.Status = models.TaskPending
	record.SubmittedAt = now
	record.UpdatedAt = now
	return SubmitResult{OK: true, Record: record}
}
