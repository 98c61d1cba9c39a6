// Package domain holds the core types of the heropath engine.
// Domain types are pure — no infrastructure dependency.
package domain

// WeekdayLabels are the fixed daily-log keys, Monday-first.
// The engine uses a Monday-anchored week everywhere.
var WeekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// AppState is the single persisted state document of the engine.
// It is loaded once at startup, passed by value through every transition
// function, and persisted after every mutation.
type AppState struct {
	DailyPoints   int `json:"daily_points"`
	WeeklyPoints  int `json:"weekly_points"`
	MonthlyPoints int `json:"monthly_points"`

	// DailyLog maps a weekday label (Mon..Sun) to points accumulated on
	// that day of the current week. Cleared at weekly rollover.
	DailyLog map[string]int `json:"daily_log"`

	StreakCurrent int `json:"streak_current"`
	StreakBest    int `json:"streak_best"`

	// LastActiveDate is the ISO date (YYYY-MM-DD) of the last recorded
	// activity, or "" if none has ever been recorded.
	LastActiveDate string `json:"last_active_date"`

	// Histories are append-only, oldest first.
	WeeklyHistory  []WeeklyRecord  `json:"weekly_history"`
	MonthlyHistory []MonthlyRecord `json:"monthly_history"`

	// LastResetDate guards rollovers: at most one rollover of each cadence
	// per calendar day. ISO date or "".
	LastResetDate string `json:"last_reset_date"`

	// Reward is free text shown when the weekly threshold is crossed.
	Reward string `json:"reward"`
}

// WeeklyRecord archives one closed week.
type WeeklyRecord struct {
	WeekStart string `json:"week_start"` // ISO date of the Monday that closed the week
	Total     int    `json:"total"`
}

// MonthlyRecord archives one closed month.
type MonthlyRecord struct {
	Month string `json:"month"` // e.g. "November 2026"
	Total int    `json:"total"`
}

// Activity is one entry of the externally configured activity catalog.
type Activity struct {
	Label  string `json:"label"`
	Points int    `json:"points"`
}

// ActivityEntry is one durable per-tap log row.
type ActivityEntry struct {
	ID     string `json:"id"`
	TS     int64  `json:"ts"` // Unix seconds
	Label  string `json:"label"`
	Points int    `json:"points"`
}

// LogResult is what the engine reports back to the UI shell after a tap.
type LogResult struct {
	Label          string        `json:"label"`
	Points         int           `json:"points"`
	DailyPoints    int           `json:"daily_points"`
	WeeklyPoints   int           `json:"weekly_points"`
	MonthlyPoints  int           `json:"monthly_points"`
	StreakCurrent  int           `json:"streak_current"`
	StreakBest     int           `json:"streak_best"`
	Stage          Stage         `json:"stage"`
	Progress       StageProgress `json:"progress"`
	RewardUnlocked bool          `json:"reward_unlocked"`
}
