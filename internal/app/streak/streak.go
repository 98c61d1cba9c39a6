// Package streak maintains the consecutive-day activity streak.
// A day counts if at least one activity was recorded on it. Streaks break
// silently — there is no freeze and no "streak at risk" nagging.
package streak

import (
	"time"

	"github.com/heropath-app/heropath/internal/app/calendar"
	"github.com/heropath-app/heropath/internal/domain"
)

// Update applies one day of activity to the streak counters.
//
// First activity ever starts a 1-day streak. Repeats on the same day are
// no-ops. A gap of exactly one day extends the streak; any larger gap resets
// it to 1, with the best-streak high-water mark untouched. A negative gap
// (clock moved backwards) is treated as same-day so a timezone anomaly can't
// corrupt the counters.
func Update(s domain.AppState, today time.Time) domain.AppState {
	if s.LastActiveDate == "" {
		s.StreakCurrent = 1
		s.StreakBest = 1
		s.LastActiveDate = calendar.DayKey(today)
		return s
	}

	last := calendar.ParseDay(s.LastActiveDate)
	diff := calendar.DiffDays(last, today)

	switch {
	case diff <= 0:
		// Same day, or clock skew — counters untouched.
		return s

	case diff == 1:
		s.StreakCurrent++
		if s.StreakCurrent > s.StreakBest {
			s.StreakBest = s.StreakCurrent
		}

	default:
		// Streak broken; today is a fresh start.
		s.StreakCurrent = 1
	}

	s.LastActiveDate = calendar.DayKey(today)
	return s
}
