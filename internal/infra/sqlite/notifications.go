package sqlite

import (
	"time"

	"github.com/heropath-app/heropath/internal/domain"
)

// ─── Notifications ──────────────────────────────────────────────────────────

// InsertNotification stores a notification and returns its ID.
func (d *DB) InsertNotification(n domain.Notification) (int64, error) {
	res, err := d.db.Exec(
		`INSERT INTO notifications (type, title, body, created_at, shown) VALUES (?, ?, ?, ?, ?)`,
		string(n.Type), n.Title, n.Body, n.CreatedAt.Unix(), n.Shown,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListPendingNotifications returns unshown notifications, oldest first.
func (d *DB) ListPendingNotifications(limit int) ([]domain.Notification, error) {
	rows, err := d.db.Query(
		`SELECT id, type, title, body, created_at, shown FROM notifications
		 WHERE shown = 0 ORDER BY created_at ASC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifs []domain.Notification
	for rows.Next() {
		var n domain.Notification
		var typ string
		var createdAt int64
		if err := rows.Scan(&n.ID, &typ, &n.Title, &n.Body, &createdAt, &n.Shown); err != nil {
			return nil, err
		}
		n.Type = domain.NotificationType(typ)
		n.CreatedAt = time.Unix(createdAt, 0)
		notifs = append(notifs, n)
	}
	return notifs, rows.Err()
}

// MarkNotificationShown marks a notification as shown.
// Returns domain.ErrNotFound for unknown IDs.
func (d *DB) MarkNotificationShown(id int64) error {
	res, err := d.db.Exec(`UPDATE notifications SET shown = 1 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// NotificationCountSince counts notifications created at or after the given
// Unix time.
func (d *DB) NotificationCountSince(ts int64) (int, error) {
	var count int
	err := d.db.QueryRow(
		`SELECT COUNT(*) FROM notifications WHERE created_at >= ?`, ts,
	).Scan(&count)
	return count, err
}
