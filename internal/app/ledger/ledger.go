// Package ledger is the single mutation surface for recording activity
// points. It accumulates the daily/weekly/monthly running totals and the
// per-weekday log used by the week visualizations.
package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/heropath-app/heropath/internal/domain"
)

// Record adds points to every running total and to the weekday's log slot.
// Point values come pre-validated from the activity catalog, so there are no
// error conditions here. The input state is not mutated.
func Record(s domain.AppState, weekdayLabel string, points int) domain.AppState {
	s.DailyPoints += points
	s.WeeklyPoints += points
	s.MonthlyPoints += points

	log := make(map[string]int, len(s.DailyLog)+1)
	for k, v := range s.DailyLog {
		log[k] = v
	}
	log[weekdayLabel] += points
	s.DailyLog = log

	return s
}

// NewEntry builds the durable per-tap log row for a recorded activity.
func NewEntry(label string, points int, at time.Time) domain.ActivityEntry {
	return domain.ActivityEntry{
		ID:     uuid.NewString(),
		TS:     at.Unix(),
		Label:  label,
		Points: points,
	}
}

// Lookup finds an activity by label in the configured catalog.
func Lookup(catalog []domain.Activity, label string) (domain.Activity, error) {
	for _, a := range catalog {
		if a.Label == label {
			return a, nil
		}
	}
	return domain.Activity{}, domain.ErrUnknownActivity
}
