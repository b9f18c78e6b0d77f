package routes

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	authctl "github.com/zhuxinjianbtc-hue/codex-offerwall/controllers/auth"
	"github.com/zhuxinjianbtc-hue/codex-offerwall/controllers/users"
	"github.com/zhuxinjianbtc-hue/codex-offerwall/core"
	"github.com/zhuxinjianbtc-hue/codex-offerwall/middleware"
)

// UsersRoutes registers every user-facing route on the given subrouter.
func UsersRoutes(api *mux.Router, app *core.App) {
	// Auth flows share a tighter limiter than reads.
	authLimiter := middleware.NewIPRateLimiter(60, 5*time.Minute)
	writeLimiter := middleware.NewIPRateLimiter(120, time.Minute)

	uc := users.NewController(app)
	ac := authctl.NewController(app)

	// Register & Login & Guest session
	api.Handle("/auth/register", authLimiter.Middleware(http.HandlerFunc(ac.Register))).Methods(http.MethodPost)
	api.Handle("/auth/login", authLimiter.Middleware(http.HandlerFunc(ac.Login))).Methods(http.MethodPost)
	api.Handle("/auth/guest", authLimiter.Middleware(http.HandlerFunc(ac.Guest))).Methods(http.MethodPost)
	api.Handle("/auth/logout", authLimiter.Middleware(http.HandlerFunc(ac.Logout))).Methods(http.MethodPost)

	// Offer wall
	api.Handle("/tasks", http.HandlerFunc(uc.TaskList)).Methods(http.MethodGet)
	api.Handle("/tasks/{id}", http.HandlerFunc(uc.TaskDetail)).Methods(http.MethodGet)
	api.Handle("/tasks/{id}/start", writeLimiter.Middleware(http.HandlerFunc(uc.TaskStart))).Methods(http.MethodPost)
	api.Handle("/tasks/{id}/submit", writeLimiter.Middleware(http.HandlerFunc(uc.TaskSubmit))).Methods(http.MethodPost)
	api.Handle("/my-tasks", http.HandlerFunc(uc.MyTasks)).Methods(http.MethodGet)

	// Wallet
	api.Handle("/wallet", http.HandlerFunc(uc.Wallet)).Methods(http.MethodGet)
	api.Handle("/wallet/options", http.HandlerFunc(uc.RedeemOptions)).Methods(http.MethodGet)
	api.Handle("/wallet/redeem", writeLimiter.Middleware(http.HandlerFunc(uc.Redeem))).Methods(http.MethodPost)

	// Leaderboard
	api.Handle("/leaderboard", http.HandlerFunc(uc.Leaderboard)).Methods(http.MethodGet)

	// Profile
	api.Handle("/profile", http.HandlerFunc(uc.Profile)).Methods(http.MethodGet)
	api.Handle("/profile", writeLimiter.Middleware(http.HandlerFunc(uc.UpdateProfile))).Methods(http.MethodPut)
}
