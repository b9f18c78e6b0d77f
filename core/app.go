package core

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/zhuxinjianbtc-hue/codex-offerwall/catalog"
	"github.com/zhuxinjianbtc-hue/codex-offerwall/models"
	"github.com/zhuxinjianbtc-hue/codex-offerwall/storage"
)

// Clock returns the current wall-clock time in unix milliseconds.
type Clock func() int64

// SystemClock is the production clock.
func SystemClock() int64 {
	return time.Now().UnixMilli()
}

// AppConfig wires an App. Zero fields get working defaults: in-memory
// storage, the built-in catalogs, the single-guest policy and the system
// clock.
type AppConfig struct {
	KV         storage.KV
	Tasks      catalog.TaskCatalog
	Options    catalog.RedeemCatalog
	Policy     SessionPolicy
	Clock      Clock
	StorageKey string
}

// App is the explicit store handle every operation goes through. It owns the
// in-memory store, serializes all operations under one mutex (the host is
// concurrent even though the model is a single logical thread) and persists
// the whole blob synchronously after every mutation. A failing backend
// degrades persistence to in-memory-only; nothing here is fatal.
type App struct {
	mu      sync.Mutex
	kv      storage.KV
	key     string
	tasks   catalog.TaskCatalog
	options catalog.RedeemCatalog
	policy  SessionPolicy
	clock   Clock
	store   *models.Store
}

func NewApp(cfg AppConfig) *App {
	if cfg.KV == nil {
		cfg.KV = storage.NewMemory()
	}
	if cfg.Tasks == nil {
		cfg.Tasks = catalog.DefaultTasks()
	}
	if cfg.Options == nil {
		cfg.Options = catalog.DefaultOptions()
	}
	if cfg.Policy == nil {
		cfg.Policy = SingleGuestPolicy{}
	}
	if cfg.Clock == nil {
		cfg.Clock = SystemClock
	}
	if cfg.StorageKey == "" {
		cfg.StorageKey = StorageKey
	}
	return &App{
		kv:      cfg.KV,
		key:     cfg.StorageKey,
		tasks:   cfg.Tasks,
		options: cfg.Options,
		policy:  cfg.Policy,
		clock:   cfg.Clock,
		store:   &models.Store{Version: models.StoreVersion, Users: []*models.User{}},
	}
}

// Tasks exposes the task catalog to the presentation layer.
func (a *App) Tasks() catalog.TaskCatalog { return a.tasks }

// Options exposes the redeem option catalog.
func (a *App) Options() catalog.RedeemCatalog { return a.options }

// Now reads the app clock.
func (a *App) Now() int64 { return a.clock() }

// Load reads the blob, normalizes it and runs session enforcement. An absent
// key or corrupt blob yields a fresh store. Always persists the enforced
// result so the stored blob matches what is in memory.
func (a *App) Load(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	data, found, err := a.kv.Get(ctx, a.key)
	if err != nil {
		log.Printf("[core] load failed, starting from empty store: %v", err)
		data = nil
	} else if !found {
		data = nil
	}

	a.store = NormalizeStore(data, a.clock())
	a.policy.Enforce(a.store, a.clock())
	a.persistLocked(ctx)
	return nil
}

// persistLocked serializes the whole store and replaces the blob. Must be
// called with the mutex held. A write failure is logged and swallowed: the
// in-memory state stays authoritative and at most one operation's effect can
// be lost on a crash.
func (a *App) persistLocked(ctx context.Context) {
	data, err := json.Marshal(a.store)
	if err != nil {
		log.Printf("[core] store marshal failed: %v", err)
		return
	}
	if err := a.kv.Set(ctx, a.key, data); err != nil {
		log.Printf("[core] persist failed, continuing in memory: %v", err)
	}
}

// currentLocked returns the session user, running enforcement when the
// pointer is unset (after a logout, or a blob that lost its session).
func (a *App) currentLocked(ctx context.Context) *models.User {
	if u := a.store.CurrentUser(); u != nil {
		return u
	}
	u := a.policy.Enforce(a.store, a.clock())
	a.persistLocked(ctx)
	return u
}

// EnforceSession runs the session policy and persists. Returns a copy of the
// resulting session user.
func (a *App) EnforceSession(ctx context.Context) *models.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	u := a.policy.Enforce(a.store, a.clock())
	a.persistLocked(ctx)
	return u.Clone()
}

// User returns a copy of the session user.
func (a *App) User(ctx context.Context) *models.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.currentLocked(ctx).Clone()
}

// StartTask starts the catalog task for the session user. The returned code
// is empty on success.
func (a *App) StartTask(ctx context.Context, taskID string) (bool, string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	task, ok := a.tasks.FindTask(taskID)
	if !ok {
		return false, CodeUnknownTask
	}
	user := a.currentLocked(ctx)
	if !StartTask(user, task, a.clock()) {
		return false, CodeAlreadyStarted
	}
	a.persistLocked(ctx)
	return true, ""
}

// SubmitTask submits the catalog task for the session user.
func (a *App) SubmitTask(ctx context.Context, taskID string) SubmitResult {
	a.mu.Lock()
	defer a.mu.Unlock()

	task, ok := a.tasks.FindTask(taskID)
	if !ok {
		return SubmitResult{Code: CodeUnknownTask}
	}
	user := a.currentLocked(ctx)
	result := SubmitTask(user, task, a.clock())
	if result.OK {
		a.persistLocked(ctx)
	}
	if result.Record != nil {
		rc := *result.Record
		result.Record = &rc
	}
	return result
}

// Record returns a copy of the session user's record for the task, or nil.
func (a *App) Record(ctx context.Context, taskID string) *models.TaskRecord {
	a.mu.Lock()
	defer a.mu.Unlock()

	record := GetRecord(a.currentLocked(ctx), taskID)
	if record == nil {
		return nil
	}
	rc := *record
	return &rc
}

// Redeem spends balance on the option for the session user.
func (a *App) Redeem(ctx context.Context, optionID string) RedeemResult {
	a.mu.Lock()
	defer a.mu.Unlock()

	option, ok := a.options.FindOption(optionID)
	if !ok {
		return RedeemResult{Code: CodeUnknownOption}
	}
	user := a.currentLocked(ctx)
	result := Redeem(user, option, a.clock())
	if result.OK {
		a.persistLocked(ctx)
	}
	if result.Record != nil {
		rc := *result.Record
		result.Record = &rc
	}
	return result
}

// SweepNow runs one approval sweep across the whole store and persists when
// anything changed.
func (a *App) SweepNow(ctx context.Context) SweepResult {
	a.mu.Lock()
	defer a.mu.Unlock()

	result := Sweep(a.store, a.tasks, a.clock())
	if result.Changed {
		a.persistLocked(ctx)
	}
	return result
}

// Register creates an account and persists.
func (a *App) Register(ctx context.Context, payload Credentials) AuthResult {
	a.mu.Lock()
	defer a.mu.Unlock()

	result := Register(a.store, payload, a.clock())
	if result.OK {
		a.persistLocked(ctx)
	}
	result.User = result.User.Clone()
	return result
}

// Login switches the session to a matching account and persists.
func (a *App) Login(ctx context.Context, payload Credentials) AuthResult {
	a.mu.Lock()
	defer a.mu.Unlock()

	result := Login(a.store, payload, a.clock())
	if result.OK {
		a.persistLocked(ctx)
	}
	result.User = result.User.Clone()
	return result
}

// LoginGuest switches the session to the guest account and persists.
func (a *App) LoginGuest(ctx context.Context) AuthResult {
	a.mu.Lock()
	defer a.mu.Unlock()

	result := LoginGuest(a.store, a.clock())
	a.persistLocked(ctx)
	result.User = result.User.Clone()
	return result
}

// Logout clears the session and persists.
func (a *App) Logout(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	Logout(a.store)
	a.persistLocked(ctx)
}

// ProfilePatch updates only its non-nil fields.
type ProfilePatch struct {
	Nickname      *string `json:"nickname"`
	Avatar        *string `json:"avatar"`
	Notifications *bool   `json:"notifications"`
}

// UpdateProfile patches the session user's profile and persists.
func (a *App) UpdateProfile(ctx context.Context, patch ProfilePatch) *models.User {
	a.mu.Lock()
	defer a.mu.Unlock()

	user := a.currentLocked(ctx)
	if patch.Nickname != nil && *patch.Nickname != "" {
		user.Nickname = *patch.Nickname
	}
	if patch.Avatar != nil && *patch.Avatar != "" {
		user.Avatar = *patch.Avatar
	}
	if patch.Notifications != nil {
		user.Settings.Notifications = *patch.Notifications
	}
	a.persistLocked(ctx)
	return user.Clone()
}
