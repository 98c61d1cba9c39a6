package domain

import "fmt"

// ─── Journey Types ──────────────────────────────────────────────────────────

// StageDef is one externally configured stage definition. Exactly six of
// these parameterize the journey builder; they are never mutated by it.
type StageDef struct {
	Level  int     `json:"level" toml:"level"`
	Name   string  `json:"name" toml:"name"`
	Color  string  `json:"color" toml:"color"`
	Weight float64 `json:"weight" toml:"weight"`
}

// Stage is one of six sequential phases partitioning a calendar month.
type Stage struct {
	Level    int     `json:"level"`
	Name     string  `json:"name"`
	StartDay int     `json:"start_day"`
	EndDay   int     `json:"end_day"`
	Color    string  `json:"color"`
	Length   int     `json:"length"`
	Weight   float64 `json:"weight"`
	Target   int     `json:"target"` // round(length × basePointsPerDay × weight)
}

// Contains reports whether a day of month falls inside this stage.
func (s Stage) Contains(dayOfMonth int) bool {
	return dayOfMonth >= s.StartDay && dayOfMonth <= s.EndDay
}

// Journey partitions one calendar month into six stages. Rebuilt once per
// month (keyed by MonthKey) and otherwise read-only.
type Journey struct {
	MonthKey string  `json:"month_key"` // "YYYY-M"
	Stages   []Stage `json:"stages"`
}

// StageKey identifies a stage within its month, e.g. "2026-8-L3".
func (j Journey) StageKey(s Stage) string {
	return fmt.Sprintf("%s-L%d", j.MonthKey, s.Level)
}

// StageBaseline records the cumulative monthly points at the moment the
// current stage began. Rewritten exactly when the active stage transitions.
type StageBaseline struct {
	StageKey string `json:"stage_key"`
	Baseline int    `json:"baseline"`
}

// StageProgress is progress within the active stage, measured relative to
// the baseline rather than to absolute monthly points.
type StageProgress struct {
	Points  int `json:"points"`
	Percent int `json:"percent"` // 0–100
}
