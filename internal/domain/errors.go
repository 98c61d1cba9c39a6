package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// The engine's error surface is deliberately narrow: arithmetic never fails
// and malformed persisted values default to zero. Errors exist only for
// lookups, configuration, and storage.

var (
	// ErrUnknownActivity means the label is not in the configured catalog.
	ErrUnknownActivity = errors.New("activity not found in catalog")

	// ErrNotFound is returned for missing rows (notifications, journeys).
	ErrNotFound = errors.New("not found")

	// Config validation errors
	ErrStageCount      = errors.New("stage configuration must define exactly 6 stages")
	ErrActivityPoints  = errors.New("activity points must be positive")
	ErrDuplicateLabel  = errors.New("duplicate activity label in catalog")
	ErrBasePointsGoal  = errors.New("base points per day must be positive")
	ErrRewardThreshold = errors.New("weekly reward threshold must be positive")
)
