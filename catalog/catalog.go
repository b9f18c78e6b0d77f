// Package catalog holds the read-only offer and redemption catalogs the core
// consumes. The core never mutates catalog data; records snapshot what they
// need (reward amounts) at creation time.
package catalog

// Task is one offer-wall entry.
type Task struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Reward      int64  `json:"reward"`
	Type        string `json:"type"`       // register | download | survey | purchase | trial
	Difficulty  string `json:"difficulty"` // easy | medium | hard
	Badge       string `json:"badge"`      // hot | recommend | new
	Device      string `json:"device"`     // all | ios | android
	Geo         string `json:"geo"`        // global or a region code
}

// TaskCatalog is an ordered, read-only task collection.
type TaskCatalog interface {
	Tasks() []Task
	FindTask(id string) (Task, bool)
}

// RedeemOption is one way to spend balance. MinimumPoints is both the price
// and the threshold: redeeming always spends exactly MinimumPoints.
type RedeemOption struct {
	ID            string `json:"id"`
	Label         string `json:"label"`
	Icon          string `json:"icon"`
	MinimumPoints int64  `json:"minimumPoints"`
}

// RedeemCatalog is an ordered, read-only redeem option collection.
type RedeemCatalog interface {
	Options() []RedeemOption
	FindOption(id string) (RedeemOption, bool)
}

type staticTasks struct {
	list []Task
}

func (c *staticTasks) Tasks() []Task {
	out := make([]Task, len(c.list))
	copy(out, c.list)
	return out
}

func (c *staticTasks) FindTask(id string) (Task, bool) {
	for _, t := range c.list {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

type staticOptions struct {
	list []RedeemOption
}

func (c *staticOptions) Options() []RedeemOption {
	out := make([]RedeemOption, len(c.list))
	copy(out, c.list)
	return out
}

func (c *staticOptions) FindOption(id string) (RedeemOption, bool) {
	for _, o := range c.list {
		if o.ID == id {
			return o, true
		}
	}
	return RedeemOption{}, false
}

// NewStaticTasks wraps a fixed task list in a TaskCatalog.
func NewStaticTasks(list []Task) TaskCatalog {
	return &staticTasks{list: list}
}

// NewStaticOptions wraps a fixed option list in a RedeemCatalog.
func NewStaticOptions(list []RedeemOption) RedeemCatalog {
	return &staticOptions{list: list}
}
