// Package metrics provides Prometheus metrics for the heropath engine:
// counters for taps, points, rollovers, and rewards, plus gauges mirroring
// the streak and stage state.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Activity ───────────────────────────────────────────────────────────────

// ActivitiesRecorded tracks recorded activities by catalog label.
var ActivitiesRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "heropath",
	Name:      "activities_recorded_total",
	Help:      "Total activities recorded.",
}, []string{"label"})

// PointsEarned tracks total points added to the ledger.
var PointsEarned = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "heropath",
	Name:      "points_earned_total",
	Help:      "Total points earned across all activities.",
})

// ─── Streak ─────────────────────────────────────────────────────────────────

// StreakCurrent mirrors the current consecutive-day streak.
var StreakCurrent = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "heropath",
	Name:      "streak_current_days",
	Help:      "Current consecutive-day activity streak.",
})

// StreakBest mirrors the best streak high-water mark.
var StreakBest = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "heropath",
	Name:      "streak_best_days",
	Help:      "Best consecutive-day streak ever reached.",
})

// ─── Journey ────────────────────────────────────────────────────────────────

// StageLevel mirrors the active stage level (1–6).
var StageLevel = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "heropath",
	Name:      "stage_level",
	Help:      "Active hero's-journey stage level.",
})

// StageProgress mirrors baseline-relative progress in the active stage.
var StageProgress = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "heropath",
	Name:      "stage_progress_percent",
	Help:      "Progress toward the active stage target (0-100).",
})

// ─── Rollovers & Rewards ────────────────────────────────────────────────────

// RolloversApplied tracks applied rollovers by cadence.
var RolloversApplied = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "heropath",
	Name:      "rollovers_applied_total",
	Help:      "Total period rollovers applied.",
}, []string{"cadence"})

// RewardsUnlocked tracks weekly reward threshold crossings.
var RewardsUnlocked = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "heropath",
	Name:      "rewards_unlocked_total",
	Help:      "Total weekly reward unlocks.",
})
