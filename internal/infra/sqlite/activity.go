package sqlite

import (
	"github.com/heropath-app/heropath/internal/domain"
)

// ─── Activity Log ───────────────────────────────────────────────────────────

// InsertActivityEntry appends one per-tap row.
func (d *DB) InsertActivityEntry(e domain.ActivityEntry) error {
	_, err := d.db.Exec(
		`INSERT INTO activity_log (id, ts, label, points) VALUES (?, ?, ?, ?)`,
		e.ID, e.TS, e.Label, e.Points,
	)
	return err
}

// RecentActivity returns the most recent entries, newest first.
func (d *DB) RecentActivity(limit int) ([]domain.ActivityEntry, error) {
	rows, err := d.db.Query(
		`SELECT id, ts, label, points FROM activity_log ORDER BY ts DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.ActivityEntry
	for rows.Next() {
		var e domain.ActivityEntry
		if err := rows.Scan(&e.ID, &e.TS, &e.Label, &e.Points); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ActivityCountSince counts taps recorded at or after the given Unix time.
func (d *DB) ActivityCountSince(ts int64) (int, error) {
	var count int
	err := d.db.QueryRow(`SELECT COUNT(*) FROM activity_log WHERE ts >= ?`, ts).Scan(&count)
	return count, err
}
