package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhuxinjianbtc-hue/codex-offerwall/catalog"
	"github.com/zhuxinjianbtc-hue/codex-offerwall/models"
	"github.com/zhuxinjianbtc-hue/codex-offerwall/storage"
)

// testApp wires an App around a controllable clock and in-memory storage.
func testApp(t *testing.T, kv storage.KV) (*App, *int64) {
	t.Helper()
	now := testNow
	app := NewApp(AppConfig{
		KV: kv,
		Tasks: catalog.NewStaticTasks([]catalog.Task{
			{ID: "t1", Name: "Install Puzzle Rush", Reward: 50},
		}),
		Options: catalog.NewStaticOptions([]catalog.RedeemOption{
			{ID: "giftcard", Label: "Gift Card", MinimumPoints: 200},
		}),
		Clock: func() int64 { return now },
	})
	require.NoError(t, app.Load(context.Background()))
	return app, &now
}

func TestApp_FullLifecycle(t *testing.T) {
	ctx := context.Background()
	app, now := testApp(t, storage.NewMemory())

	// Fresh store: enforced guest with the starter grant.
	user := app.User(ctx)
	assert.Equal(t, int64(100), user.Balance)
	require.Len(t, user.Ledger, 1)
	assert.Equal(t, models.LedgerIncome, user.Ledger[0].Type)
	assert.Equal(t, int64(100), user.Ledger[0].Amount)

	// Start: record in_progress.
	created, code := app.StartTask(ctx, "t1")
	require.True(t, created, "code=%s", code)
	assert.Equal(t, models.TaskInProgress, app.Record(ctx, "t1").Status)

	// Submit: pending with submittedAt stamped.
	*now += 1000
	result := app.SubmitTask(ctx, "t1")
	require.True(t, result.OK)
	submittedAt := result.Record.SubmittedAt
	assert.Equal(t, *now, submittedAt)

	// 4000ms later: below the review latency, nothing moves.
	*now = submittedAt + 4000
	sweep := app.SweepNow(ctx)
	assert.False(t, sweep.Changed)
	assert.Equal(t, models.TaskPending, app.Record(ctx, "t1").Status)

	// 5000ms later: approved and rewarded.
	*now = submittedAt + 5000
	sweep = app.SweepNow(ctx)
	require.True(t, sweep.Changed)

	user = app.User(ctx)
	assert.Equal(t, int64(150), user.Balance)
	require.Len(t, user.Ledger, 2)
	assert.Equal(t, int64(50), user.Ledger[0].Amount)
	assert.Equal(t, models.TaskApproved, app.Record(ctx, "t1").Status)

	// Redeem above balance: structured rejection, no mutation.
	redeem := app.Redeem(ctx, "giftcard")
	if assert.False(t, redeem.OK) {
		// balance 150 < 200
		assert.Equal(t, CodeInsufficient, redeem.Code)
	}
	assert.Equal(t, int64(150), app.User(ctx).Balance)
}

func TestApp_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()

	app, now := testApp(t, kv)
	created, _ := app.StartTask(ctx, "t1")
	require.True(t, created)
	require.True(t, app.SubmitTask(ctx, "t1").OK)
	*now += ApprovalDelayMillis
	require.True(t, app.SweepNow(ctx).Changed)

	// A second app over the same storage sees the approved record.
	reloaded, _ := testApp(t, kv)
	record := reloaded.Record(ctx, "t1")
	require.NotNil(t, record)
	assert.Equal(t, models.TaskApproved, record.Status)
	assert.True(t, record.Rewarded)
	assert.Equal(t, int64(150), reloaded.User(ctx).Balance)
}

func TestApp_UnknownTaskAndOptionCodes(t *testing.T) {
	ctx := context.Background()
	app, _ := testApp(t, storage.NewMemory())

	created, code := app.StartTask(ctx, "missing")
	assert.False(t, created)
	assert.Equal(t, CodeUnknownTask, code)

	submit := app.SubmitTask(ctx, "missing")
	assert.False(t, submit.OK)
	assert.Equal(t, CodeUnknownTask, submit.Code)

	redeem := app.Redeem(ctx, "missing")
	assert.False(t, redeem.OK)
	assert.Equal(t, CodeUnknownOption, redeem.Code)
}

func TestApp_DuplicateStartCode(t *testing.T) {
	ctx := context.Background()
	app, _ := testApp(t, storage.NewMemory())

	created, _ := app.StartTask(ctx, "t1")
	require.True(t, created)
	created, code := app.StartTask(ctx, "t1")
	assert.False(t, created)
	assert.Equal(t, CodeAlreadyStarted, code)
}

func TestApp_LogoutReenforcesGuest(t *testing.T) {
	ctx := context.Background()
	app, _ := testApp(t, storage.NewMemory())

	app.Logout(ctx)
	user := app.User(ctx)
	require.NotNil(t, user)
	assert.True(t, user.IsGuest, "an operation after logout lands on the enforced guest")
}

func TestApp_RegisterThenBootstrapCollapses(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	app, _ := testApp(t, kv)

	reg := app.Register(ctx, Credentials{Email: "new@example.com", Password: "secret1", Nickname: "New"})
	require.True(t, reg.OK)
	assert.False(t, reg.User.IsGuest)

	// The next bootstrap collapses the store back to the guest: the
	// registered identity is discarded, the documented single-guest policy.
	reloaded, _ := testApp(t, kv)
	user := reloaded.User(ctx)
	assert.True(t, user.IsGuest)
	assert.Empty(t, user.Email)
	assert.Equal(t, GuestID, user.ID)
	require.Len(t, reloaded.User(ctx).Tasks, 0)
}

func TestApp_RegisterValidation(t *testing.T) {
	ctx := context.Background()
	app, _ := testApp(t, storage.NewMemory())

	bad := app.Register(ctx, Credentials{Email: "not-an-email", Password: "secret1"})
	assert.Equal(t, CodeInvalidEmail, bad.Code)

	short := app.Register(ctx, Credentials{Email: "a@b.co", Password: "123"})
	assert.Equal(t, CodeInvalidPassword, short.Code)

	ok := app.Register(ctx, Credentials{Email: "a@b.co", Password: "secret1"})
	require.True(t, ok.OK)
	dup := app.Register(ctx, Credentials{Email: "A@B.CO", Password: "secret2"})
	assert.Equal(t, CodeEmailExists, dup.Code)
}

func TestApp_LoginFlows(t *testing.T) {
	ctx := context.Background()
	app, _ := testApp(t, storage.NewMemory())

	require.True(t, app.Register(ctx, Credentials{Email: "a@b.co", Password: "secret1"}).OK)
	app.Logout(ctx)

	fail := app.Login(ctx, Credentials{Email: "a@b.co", Password: "wrong"})
	assert.Equal(t, CodeLoginFailed, fail.Code)

	ok := app.Login(ctx, Credentials{Email: "a@b.co", Password: "secret1"})
	require.True(t, ok.OK)
	assert.Equal(t, "a@b.co", ok.User.Email)
}

func TestApp_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	app, _ := testApp(t, storage.NewMemory())

	nickname := "Speedrunner"
	off := false
	user := app.UpdateProfile(ctx, ProfilePatch{Nickname: &nickname, Notifications: &off})
	assert.Equal(t, "Speedrunner", user.Nickname)
	assert.False(t, user.Settings.Notifications)
}
