package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/heropath-app/heropath/internal/domain"
)

// ─── Journey Cache ──────────────────────────────────────────────────────────
// One row per calendar month; the builder is deterministic so a cached
// journey never needs invalidation within its month.

// SaveJourney stores a built journey under its month key.
func (d *DB) SaveJourney(j domain.Journey) error {
	stages, err := json.Marshal(j.Stages)
	if err != nil {
		return fmt.Errorf("marshal stages: %w", err)
	}
	_, err = d.db.Exec(
		`INSERT INTO journeys (month_key, stages, built_at) VALUES (?, ?, ?)
		 ON CONFLICT(month_key) DO UPDATE SET stages=excluded.stages, built_at=excluded.built_at`,
		j.MonthKey, string(stages), time.Now().Unix(),
	)
	return err
}

// LoadJourney retrieves the journey for a month key.
// Returns domain.ErrNotFound if no journey was built for that month.
func (d *DB) LoadJourney(monthKey string) (domain.Journey, error) {
	var j domain.Journey
	var stages string

	err := d.db.QueryRow(
		`SELECT month_key, stages FROM journeys WHERE month_key = ?`, monthKey,
	).Scan(&j.MonthKey, &stages)
	if err == sql.ErrNoRows {
		return j, domain.ErrNotFound
	}
	if err != nil {
		return j, err
	}

	if err := json.Unmarshal([]byte(stages), &j.Stages); err != nil {
		// Corrupt cache row — treat as missing so the caller rebuilds.
		return domain.Journey{}, domain.ErrNotFound
	}
	return j, nil
}
