// Package rollover detects week/month boundary crossings, archives the
// closing period's total, and resets the corresponding counters.
//
// The protocol is two-phase: Pending proposes, the caller (UI or CLI)
// decides, Apply commits. A deferred proposal simply re-surfaces on the next
// check because the guard date is only advanced after applying.
package rollover

import (
	"time"

	"github.com/heropath-app/heropath/internal/app/calendar"
	"github.com/heropath-app/heropath/internal/domain"
)

// Proposal is one boundary crossing awaiting a decision.
type Proposal struct {
	Cadence domain.Cadence `json:"cadence"`
	Period  string         `json:"period"` // archive label: week-start date or month name
	Total   int            `json:"total"`  // the counter that would be archived
}

// Pending returns the rollovers due today, in apply order (weekly first).
//
// Weekly boundary: today is Monday. Monthly boundary: today is the 1st.
// Both are suppressed when a rollover already ran today (LastResetDate
// guard), making the check idempotent per calendar day.
func Pending(s domain.AppState, today time.Time) []Proposal {
	if s.LastResetDate == calendar.DayKey(today) {
		return nil
	}

	var pending []Proposal
	if calendar.IsMonday(today) {
		pending = append(pending, Proposal{
			Cadence: domain.CadenceWeekly,
			Period:  calendar.DayKey(today),
			Total:   s.WeeklyPoints,
		})
	}
	if calendar.IsFirstOfMonth(today) {
		pending = append(pending, Proposal{
			Cadence: domain.CadenceMonthly,
			Period:  calendar.MonthLabel(today),
			Total:   s.MonthlyPoints,
		})
	}
	return pending
}

// Apply archives one proposal into history and resets its counters. The
// weekly close also clears the daily total and the per-weekday log.
//
// Apply does NOT advance LastResetDate: when a month starts on a Monday both
// cadences must archive first, so the caller sets the shared guard once
// after every pending proposal has been applied.
func Apply(s domain.AppState, p Proposal) (domain.AppState, domain.Event) {
	switch p.Cadence {
	case domain.CadenceWeekly:
		s.WeeklyHistory = append(s.WeeklyHistory, domain.WeeklyRecord{
			WeekStart: p.Period,
			Total:     s.WeeklyPoints,
		})
		s.WeeklyPoints = 0
		s.DailyPoints = 0
		s.DailyLog = map[string]int{}

	case domain.CadenceMonthly:
		s.MonthlyHistory = append(s.MonthlyHistory, domain.MonthlyRecord{
			Month: p.Period,
			Total: s.MonthlyPoints,
		})
		s.MonthlyPoints = 0
	}

	return s, domain.Event{
		Type: domain.EventRolloverApplied,
		RolloverApplied: &domain.RolloverApplied{
			Cadence:       p.Cadence,
			Period:        p.Period,
			ArchivedTotal: p.Total,
		},
	}
}

// SetGuard stamps the shared same-day guard after a batch of applies.
func SetGuard(s domain.AppState, today time.Time) domain.AppState {
	s.LastResetDate = calendar.DayKey(today)
	return s
}
