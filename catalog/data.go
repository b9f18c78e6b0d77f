package catalog

// Default seeds the offer wall. Rewards are coins (100 coins = $1).
var defaultTasks = []Task{
	{ID: "t_register_arena", Name: "Sign up for Coin Arena", Description: "Create an account and verify your email.", Reward: 50, Type: "register", Difficulty: "easy", Badge: "hot", Device: "all", Geo: "global"},
	{ID: "t_download_puzzle", Name: "Install Puzzle Rush", Description: "Install the app and open it once.", Reward: 80, Type: "download", Difficulty: "easy", Badge: "recommend", Device: "android", Geo: "global"},
	{ID: "t_survey_gaming", Name: "Gaming habits survey", Description: "Answer a 12-question survey about your gaming habits.", Reward: 120, Type: "survey", Difficulty: "medium", Badge: "new", Device: "all", Geo: "global"},
	{ID: "t_trial_cloudplay", Name: "CloudPlay 7-day trial", Description: "Start a free trial and stream one game.", Reward: 300, Type: "trial", Difficulty: "medium", Badge: "hot", Device: "ios", Geo: "us"},
	{ID: "t_purchase_starter", Name: "Starter bundle purchase", Description: "Buy the starter bundle in Tower Saga.", Reward: 600, Type: "purchase", Difficulty: "hard", Badge: "recommend", Device: "all", Geo: "global"},
	{ID: "t_download_runner", Name: "Install Neon Runner", Description: "Install and reach level 3.", Reward: 150, Type: "download", Difficulty: "medium", Badge: "new", Device: "ios", Geo: "global"},
	{ID: "t_survey_shopping", Name: "Shopping preferences survey", Description: "Answer a short survey about in-app purchases.", Reward: 90, Type: "survey", Difficulty: "easy", Badge: "new", Device: "all", Geo: "eu"},
	{ID: "t_register_quizhub", Name: "Join QuizHub", Description: "Register and complete your first quiz.", Reward: 60, Type: "register", Difficulty: "easy", Badge: "recommend", Device: "android", Geo: "global"},
}

var defaultOptions = []RedeemOption{
	{ID: "paypal_5", Label: "PayPal $5", Icon: "💸", MinimumPoints: 500},
	{ID: "giftcard_10", Label: "Gift Card $10", Icon: "🎁", MinimumPoints: 1000},
	{ID: "steam_20", Label: "Steam Wallet $20", Icon: "🎮", MinimumPoints: 2000},
	{ID: "crypto_50", Label: "Crypto Voucher $50", Icon: "🪙", MinimumPoints: 5000},
}

// LeaderboardEntry is a display-only seeded competitor.
type LeaderboardEntry struct {
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
	Coins    int64  `json:"coins"`
}

var leaderboardSeed = []LeaderboardEntry{
	{Nickname: "PixelKnight", Avatar: "⚔️", Coins: 4820},
	{Nickname: "LootGoblin", Avatar: "🐉", Coins: 4310},
	{Nickname: "TurboSnail", Avatar: "🚀", Coins: 3975},
	{Nickname: "MysticFox", Avatar: "🧠", Coins: 3540},
	{Nickname: "CoinHunter", Avatar: "🎯", Coins: 3120},
	{Nickname: "NightOwl", Avatar: "🛡️", Coins: 2760},
	{Nickname: "ArcadeAce", Avatar: "🕹️", Coins: 2410},
	{Nickname: "GlitchWitch", Avatar: "🏆", Coins: 2050},
}

// DefaultTasks returns the built-in task catalog.
func DefaultTasks() TaskCatalog {
	return NewStaticTasks(defaultTasks)
}

// DefaultOptions returns the built-in redeem option catalog.
func DefaultOptions() RedeemCatalog {
	return NewStaticOptions(defaultOptions)
}

// LeaderboardSeed returns the seeded leaderboard competitors.
func LeaderboardSeed() []LeaderboardEntry {
	out := make([]LeaderboardEntry, len(leaderboardSeed))
	copy(out, leaderboardSeed)
	return out
}
