package models

// TaskStatus is the lifecycle state of a task record.
type TaskStatus string

const (
	TaskInProgress TaskStatus = "in_progress"
	TaskPending    TaskStatus = "pending"
	TaskApproved   TaskStatus = "approved"
	// TaskRejected is a defined terminal state with no transition producing
	// it; the data model and listings understand it but nothing enters it.
	TaskRejected TaskStatus = "rejected"
)

// TaskRecord tracks one user's progress on one catalog task. At most one
// record exists per (user, taskId). Reward is snapshotted from the catalog at
// creation so later catalog edits never change what an in-flight record pays.
// Timestamps are unix milliseconds; zero means unset.
type TaskRecord struct {
	ID          string     `json:"id"`
	TaskID      string     `json:"taskId"`
	Reward      int64      `json:"reward"`
	Status      TaskStatus `json:"status"`
	StartedAt   int64      `json:"startedAt"`
	SubmittedAt int64      `json:"submittedAt"`
	CompletedAt int64      `json:"completedAt"`
	RejectedAt  int64      `json:"rejectedAt"`
	Rewarded    bool       `json:"rewarded"`
	UpdatedAt   int64      `json:"updatedAt"`
}
