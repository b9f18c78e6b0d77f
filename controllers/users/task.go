package users

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/zhuxinjianbtc-hue/codex-offerwall/catalog"
	"github.com/zhuxinjianbtc-hue/codex-offerwall/core"
	"github.com/zhuxinjianbtc-hue/codex-offerwall/models"
	"github.com/zhuxinjianbtc-hue/codex-offerwall/utils"
)

func taskView(t catalog.Task, record *models.TaskRecord) map[string]interface{} {
	view := map[string]interface{}{
		"id":          t.ID,
		"name":        t.Name,
		"description": t.Description,
		"reward":      t.Reward,
		"type":        t.Type,
		"difficulty":  t.Difficulty,
		"badge":       t.Badge,
		"device":      t.Device,
		"geo":         t.Geo,
	}
	if record != nil {
		view["record"] = record
		view["status"] = record.Status
	}
	return view
}

// GET /tasks
func (c *Controller) TaskList(w http.ResponseWriter, r *http.Request) {
	user := c.app.User(r.Context())
	resp := []map[string]interface{}{}
	for _, t := range c.app.Tasks().Tasks() {
		resp = append(resp, taskView(t, core.GetRecord(user, t.ID)))
	}
	utils.OK(w, "Successfully", resp)
}

// GET /tasks/{id}
func (c *Controller) TaskDetail(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["id"]
	task, ok := c.app.Tasks().FindTask(taskID)
	if !ok {
		utils.Fail(w, http.StatusNotFound, "Task not found", core.CodeUnknownTask)
		return
	}
	utils.OK(w, "Successfully", taskView(task, c.app.Record(r.Context(), taskID)))
}

// POST /tasks/{id}/start
func (c *Controller) TaskStart(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["id"]
	created, code := c.app.StartTask(r.Context(), taskID)
	if !created {
		if code == core.CodeUnknownTask {
			utils.Fail(w, http.StatusNotFound, "Task not found", code)
			return
		}
		utils.Fail(w, http.StatusBadRequest, "Task already started", code)
		return
	}
	utils.OK(w, "Task started", c.app.Record(r.Context(), taskID))
}

// POST /tasks/{id}/submit
func (c *Controller) TaskSubmit(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["id"]
	result := c.app.SubmitTask(r.Context(), taskID)
	if !result.OK {
		switch result.Code {
		case core.CodeUnknownTask:
			utils.Fail(w, http.StatusNotFound, "Task not found", result.Code)
		case core.CodeAlreadyApproved:
			utils.Fail(w, http.StatusBadRequest, "Task already approved", result.Code)
		case core.CodeAlreadyPending:
			utils.Fail(w, http.StatusBadRequest, "Task already under review", result.Code)
		default:
			utils.Fail(w, http.StatusBadRequest, "Submit rejected", result.Code)
		}
		return
	}
	utils.OK(w, "Task submitted for review", result.Record)
}

// GET /my-tasks?status=
func (c *Controller) MyTasks(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	user := c.app.User(r.Context())

	resp := []map[string]interface{}{}
	for _, record := range user.Tasks {
		if status != "" && string(record.Status) != status {
			continue
		}
		item := map[string]interface{}{"record": record}
		if task, ok := c.app.Tasks().FindTask(record.TaskID); ok {
			item["task"] = taskView(task, nil)
		}
		resp = append(resp, item)
	}
	utils.OK(w, "Successfully", resp)
}
