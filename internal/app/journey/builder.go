// Package journey builds the monthly hero's journey and tracks progress
// through its stages. A journey partitions the calendar month into six
// contiguous stages with point targets; progress within the active stage is
// measured against a baseline captured at stage entry.
package journey

import (
	"math"
	"time"

	"github.com/heropath-app/heropath/internal/app/calendar"
	"github.com/heropath-app/heropath/internal/domain"
)

// StageCount is fixed: every month has exactly six narrative stages.
const StageCount = 6

// Build partitions ref's calendar month into six stages.
//
// Days are split as evenly as possible; when the month doesn't divide by
// six, the extra days go to the LAST stages, so difficulty rises toward the
// end of the month (31 days → 5,5,5,5,5,6; 28 days → 4,4,5,5,5,5).
// Each stage's target is round(length × basePointsPerDay × weight).
func Build(ref time.Time, defs []domain.StageDef, basePointsPerDay int) domain.Journey {
	totalDays := calendar.DaysInMonth(ref)
	base := totalDays / StageCount
	remainder := totalDays % StageCount

	stages := make([]domain.Stage, 0, StageCount)
	cursor := 1
	for i := 0; i < StageCount; i++ {
		length := base
		if i >= StageCount-remainder {
			length++
		}

		def := defs[i]
		stages = append(stages, domain.Stage{
			Level:    def.Level,
			Name:     def.Name,
			StartDay: cursor,
			EndDay:   cursor + length - 1,
			Color:    def.Color,
			Length:   length,
			Weight:   def.Weight,
			Target:   int(math.Round(float64(length) * float64(basePointsPerDay) * def.Weight)),
		})
		cursor += length
	}

	return domain.Journey{
		MonthKey: calendar.MonthKey(ref),
		Stages:   stages,
	}
}

// ActiveStage selects the stage containing today's day of month.
// Full coverage makes a miss impossible in practice, but the last stage is
// the fallback anyway.
func ActiveStage(j domain.Journey, today time.Time) domain.Stage {
	day := today.Day()
	for _, s := range j.Stages {
		if s.Contains(day) {
			return s
		}
	}
	return j.Stages[len(j.Stages)-1]
}

// Progress measures baseline-relative progress within a stage.
// Points never go negative; percent is capped at 100; the target is floored
// at 1 so a degenerate stage can't divide by zero.
func Progress(monthlyPoints, baseline int, stage domain.Stage) domain.StageProgress {
	points := monthlyPoints - baseline
	if points < 0 {
		points = 0
	}

	target := stage.Target
	if target < 1 {
		target = 1
	}

	percent := int(math.Round(float64(points) / float64(target) * 100))
	if percent > 100 {
		percent = 100
	}

	return domain.StageProgress{Points: points, Percent: percent}
}

// Insight returns a short coaching line for a stage progress percentage.
func Insight(percent int) string {
	switch {
	case percent >= 100:
		return "Stage cleared! Keep the momentum going."
	case percent >= 75:
		return "Almost there. One more action gets you to the leap."
	case percent >= 40:
		return "Good pace. Try stacking two micro-habits today."
	default:
		return "Start with an easy one now. Get moving."
	}
}
