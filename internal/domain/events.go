package domain

import "time"

// ─── Cadence ────────────────────────────────────────────────────────────────

// Cadence is the periodicity governing a rollover.
type Cadence string

const (
	CadenceWeekly  Cadence = "weekly"
	CadenceMonthly Cadence = "monthly"
)

// ─── Engine Events ──────────────────────────────────────────────────────────
// Events are consumed by UI/feedback collaborators (sound, confetti,
// notifications). They never feed back into engine state.

// EventType categorizes engine events.
type EventType string

const (
	EventActivityRecorded EventType = "activity_recorded"
	EventStageChanged     EventType = "stage_changed"
	EventRolloverProposed EventType = "rollover_proposed"
	EventRolloverApplied  EventType = "rollover_applied"
	EventRewardUnlocked   EventType = "reward_unlocked"
)

// Event is the union carried to listeners. Exactly one payload field is
// set, matching Type.
type Event struct {
	Type EventType `json:"type"`

	ActivityRecorded *ActivityRecorded `json:"activity_recorded,omitempty"`
	StageChanged     *StageChanged     `json:"stage_changed,omitempty"`
	RolloverProposed *RolloverProposed `json:"rollover_proposed,omitempty"`
	RolloverApplied  *RolloverApplied  `json:"rollover_applied,omitempty"`
	RewardUnlocked   *RewardUnlocked   `json:"reward_unlocked,omitempty"`
}

// ActivityRecorded fires after every ledger update.
type ActivityRecorded struct {
	Label          string `json:"label"`
	Points         int    `json:"points"`
	NewDailyTotal  int    `json:"new_daily_total"`
	NewWeeklyTotal int    `json:"new_weekly_total"`
}

// StageChanged fires when the detected active stage's key changes.
type StageChanged struct {
	NewStage Stage `json:"new_stage"`
}

// RolloverProposed fires when a period boundary is reached but not yet
// archived. The UI decides whether to apply or defer.
type RolloverProposed struct {
	Cadence Cadence `json:"cadence"`
	Total   int     `json:"total"`
}

// RolloverApplied fires once a period has been archived and reset.
type RolloverApplied struct {
	Cadence       Cadence `json:"cadence"`
	Period        string  `json:"period"`
	ArchivedTotal int     `json:"archived_total"`
}

// RewardUnlocked fires when the weekly total crosses the reward threshold.
type RewardUnlocked struct {
	RewardText  string `json:"reward_text"`
	WeeklyTotal int    `json:"weekly_total"`
}

// ─── Notification Types ─────────────────────────────────────────────────────

// NotificationType categorizes notifications.
type NotificationType string

const (
	NotifyReward   NotificationType = "reward"
	NotifyRollover NotificationType = "rollover"
)

// Notification is a user-facing message stored for the UI shell to show.
type Notification struct {
	ID        int64            `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	CreatedAt time.Time        `json:"created_at"`
	Shown     bool             `json:"shown"`
}

// NotificationPolicy governs how often notifications are stored.
// Suppression never affects engine arithmetic.
type NotificationPolicy struct {
	MaxPerDay  int    `json:"max_per_day"`
	QuietStart string `json:"quiet_start"` // "22:00"
	QuietEnd   string `json:"quiet_end"`   // "08:00"
}

// DefaultNotificationPolicy returns the default local-UI policy.
func DefaultNotificationPolicy() NotificationPolicy {
	return NotificationPolicy{
		MaxPerDay:  3,
		QuietStart: "22:00",
		QuietEnd:   "08:00",
	}
}
