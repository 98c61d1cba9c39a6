// Package reward detects threshold crossings on the weekly total and stores
// the resulting unlock notifications for the UI shell.
package reward

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/heropath-app/heropath/internal/domain"
	"github.com/heropath-app/heropath/internal/infra/sqlite"
)

// DefaultThreshold is the weekly point total that unlocks the reward.
const DefaultThreshold = 100

// Crossed reports whether adding points moved the weekly total across the
// threshold. Weekly points only grow within a period and reset at rollover,
// so this fires exactly once per crossing.
func Crossed(before, added, threshold int) bool {
	return before < threshold && before+added >= threshold
}

// Notifier stores unlock and rollover notifications, gated by a policy.
// Policy suppression drops the notification row only — engine state is
// never affected.
type Notifier struct {
	db     *sqlite.DB
	policy domain.NotificationPolicy
}

// NewNotifier creates a notifier with the default policy.
func NewNotifier(db *sqlite.DB) *Notifier {
	return &Notifier{db: db, policy: domain.DefaultNotificationPolicy()}
}

// NewNotifierWithPolicy creates a notifier with a custom policy.
func NewNotifierWithPolicy(db *sqlite.DB, policy domain.NotificationPolicy) *Notifier {
	return &Notifier{db: db, policy: policy}
}

// RewardUnlocked stores the "reward unlocked" notification.
// Returns the notification ID, or 0 if suppressed by policy.
func (n *Notifier) RewardUnlocked(rewardText string, weeklyTotal int, at time.Time) (int64, error) {
	return n.create(domain.Notification{
		Type:  domain.NotifyReward,
		Title: "Reward unlocked!",
		Body:  fmt.Sprintf("%s (%d points this week)", rewardText, weeklyTotal),
	}, at)
}

// RolloverApplied stores the "period archived" notification.
func (n *Notifier) RolloverApplied(cadence domain.Cadence, period string, total int, at time.Time) (int64, error) {
	return n.create(domain.Notification{
		Type:  domain.NotifyRollover,
		Title: fmt.Sprintf("New %s period", cadenceNoun(cadence)),
		Body:  fmt.Sprintf("%s closed with %d points.", period, total),
	}, at)
}

// Pending returns unshown notifications, oldest first.
func (n *Notifier) Pending(limit int) ([]domain.Notification, error) {
	return n.db.ListPendingNotifications(limit)
}

// MarkShown marks a notification as shown.
func (n *Notifier) MarkShown(id int64) error {
	return n.db.MarkNotificationShown(id)
}

// Policy returns the active notification policy.
func (n *Notifier) Policy() domain.NotificationPolicy {
	return n.policy
}

func (n *Notifier) create(notif domain.Notification, at time.Time) (int64, error) {
	midnight := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, at.Location())
	todayCount, err := n.db.NotificationCountSince(midnight.Unix())
	if err != nil {
		return 0, fmt.Errorf("count today: %w", err)
	}
	if todayCount >= n.policy.MaxPerDay {
		return 0, nil // Suppressed — daily limit reached
	}
	if n.isQuietHour(at) {
		return 0, nil // Suppressed — quiet hours
	}

	notif.CreatedAt = at
	notif.Shown = false

	id, err := n.db.InsertNotification(notif)
	if err != nil {
		return 0, fmt.Errorf("insert notification: %w", err)
	}
	return id, nil
}

// isQuietHour returns true if t falls within the policy's quiet hours.
func (n *Notifier) isQuietHour(t time.Time) bool {
	startHour, startMin := parseHHMM(n.policy.QuietStart)
	endHour, endMin := parseHHMM(n.policy.QuietEnd)

	timeMinutes := t.Hour()*60 + t.Minute()
	startMinutes := startHour*60 + startMin
	endMinutes := endHour*60 + endMin

	if startMinutes > endMinutes {
		// Wraps midnight: e.g., 22:00 – 08:00
		return timeMinutes >= startMinutes || timeMinutes < endMinutes
	}
	return timeMinutes >= startMinutes && timeMinutes < endMinutes
}

// parseHHMM parses "HH:MM" into hour and minute.
func parseHHMM(s string) (int, int) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h, m
}

func cadenceNoun(c domain.Cadence) string {
	if c == domain.CadenceMonthly {
		return "monthly"
	}
	return "weekly"
}
