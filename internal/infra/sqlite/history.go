package sqlite

import (
	"github.com/heropath-app/heropath/internal/domain"
)

// ─── Period Archives ────────────────────────────────────────────────────────
// Both tables are append-only: rollovers insert, nothing updates or deletes.

// AppendWeeklyHistory archives one closed week.
func (d *DB) AppendWeeklyHistory(rec domain.WeeklyRecord) error {
	_, err := d.db.Exec(
		`INSERT INTO weekly_history (week_start, total) VALUES (?, ?)`,
		rec.WeekStart, rec.Total,
	)
	return err
}

// WeeklyHistory returns all archived weeks, oldest first.
func (d *DB) WeeklyHistory() ([]domain.WeeklyRecord, error) {
	rows, err := d.db.Query(`SELECT week_start, total FROM weekly_history ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []domain.WeeklyRecord
	for rows.Next() {
		var r domain.WeeklyRecord
		if err := rows.Scan(&r.WeekStart, &r.Total); err != nil {
			return nil, err
		}
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

// AppendMonthlyHistory archives one closed month.
func (d *DB) AppendMonthlyHistory(rec domain.MonthlyRecord) error {
	_, err := d.db.Exec(
		`INSERT INTO monthly_history (month, total) VALUES (?, ?)`,
		rec.Month, rec.Total,
	)
	return err
}

// MonthlyHistory returns all archived months, oldest first.
func (d *DB) MonthlyHistory() ([]domain.MonthlyRecord, error) {
	rows, err := d.db.Query(`SELECT month, total FROM monthly_history ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []domain.MonthlyRecord
	for rows.Next() {
		var r domain.MonthlyRecord
		if err := rows.Scan(&r.Month, &r.Total); err != nil {
			return nil, err
		}
		recs = append(recs, r)
	}
	return recs, rows.Err()
}
