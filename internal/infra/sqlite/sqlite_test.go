package sqlite

import (
	"errors"
	"testing"
	"time"

	"github.com/heropath-app/heropath/internal/domain"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestProgressKV(t *testing.T) {
	db := testDB(t)

	v, err := db.GetProgress("missing")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if v != "" {
		t.Errorf("missing key = %q, want empty", v)
	}

	if err := db.SetProgress("k", "1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := db.SetProgress("k", "2"); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	v, _ = db.GetProgress("k")
	if v != "2" {
		t.Errorf("k = %q, want 2", v)
	}
}

func TestStateRoundtrip(t *testing.T) {
	db := testDB(t)

	in := domain.AppState{
		DailyPoints:    15,
		WeeklyPoints:   85,
		MonthlyPoints:  240,
		DailyLog:       map[string]int{"Mon": 30, "Tue": 25, "Wed": 30},
		StreakCurrent:  4,
		StreakBest:     9,
		LastActiveDate: "2025-07-09",
		LastResetDate:  "2025-07-07",
		Reward:         "Movie night",
	}
	if err := db.SaveState(in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := db.LoadState()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.DailyPoints != 15 || out.WeeklyPoints != 85 || out.MonthlyPoints != 240 {
		t.Errorf("totals %d/%d/%d", out.DailyPoints, out.WeeklyPoints, out.MonthlyPoints)
	}
	if out.StreakCurrent != 4 || out.StreakBest != 9 {
		t.Errorf("streak %d/%d", out.StreakCurrent, out.StreakBest)
	}
	if out.LastActiveDate != "2025-07-09" || out.LastResetDate != "2025-07-07" {
		t.Errorf("dates %q/%q", out.LastActiveDate, out.LastResetDate)
	}
	if out.Reward != "Movie night" {
		t.Errorf("reward %q", out.Reward)
	}
	if out.DailyLog["Tue"] != 25 || len(out.DailyLog) != 3 {
		t.Errorf("daily log %v", out.DailyLog)
	}
}

func TestLoadState_Defaults(t *testing.T) {
	db := testDB(t)

	s, err := db.LoadState()
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if s.DailyPoints != 0 || s.WeeklyPoints != 0 || s.MonthlyPoints != 0 {
		t.Errorf("empty db totals %d/%d/%d", s.DailyPoints, s.WeeklyPoints, s.MonthlyPoints)
	}
	if s.DailyLog == nil || len(s.DailyLog) != 0 {
		t.Errorf("daily log %v, want empty map", s.DailyLog)
	}
	if len(s.WeeklyHistory) != 0 || len(s.MonthlyHistory) != 0 {
		t.Errorf("histories %d/%d", len(s.WeeklyHistory), len(s.MonthlyHistory))
	}
}

func TestLoadState_CorruptValues(t *testing.T) {
	db := testDB(t)

	// Garbage and negative scalars fall back to 0; corrupt JSON falls back
	// to an empty log.
	_ = db.SetProgress(keyDailyPoints, "not-a-number")
	_ = db.SetProgress(keyWeeklyPoints, "-40")
	_ = db.SetProgress(keyDailyLog, "{broken")
	_ = db.SetProgress(keyStreakCurrent, "5")
	_ = db.SetProgress(keyStreakBest, "2")

	s, err := db.LoadState()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.DailyPoints != 0 {
		t.Errorf("garbage daily = %d", s.DailyPoints)
	}
	if s.WeeklyPoints != 0 {
		t.Errorf("negative weekly = %d", s.WeeklyPoints)
	}
	if len(s.DailyLog) != 0 {
		t.Errorf("corrupt log = %v", s.DailyLog)
	}
	// Best streak is repaired up to the current streak.
	if s.StreakBest != 5 {
		t.Errorf("best %d, want clamped to current 5", s.StreakBest)
	}
}

func TestHistoryAppendOrder(t *testing.T) {
	db := testDB(t)

	weeks := []domain.WeeklyRecord{
		{WeekStart: "2025-06-23", Total: 80},
		{WeekStart: "2025-06-30", Total: 95},
		{WeekStart: "2025-07-07", Total: 110},
	}
	for _, w := range weeks {
		if err := db.AppendWeeklyHistory(w); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := db.WeeklyHistory()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len %d", len(got))
	}
	for i, w := range weeks {
		if got[i] != w {
			t.Errorf("row %d = %+v, want %+v", i, got[i], w)
		}
	}

	if err := db.AppendMonthlyHistory(domain.MonthlyRecord{Month: "July 2025", Total: 310}); err != nil {
		t.Fatalf("append month: %v", err)
	}
	months, err := db.MonthlyHistory()
	if err != nil {
		t.Fatalf("list months: %v", err)
	}
	if len(months) != 1 || months[0].Month != "July 2025" || months[0].Total != 310 {
		t.Errorf("months %+v", months)
	}
}

func TestJourneyCache(t *testing.T) {
	db := testDB(t)

	if _, err := db.LoadJourney("2025-7"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing journey err = %v, want ErrNotFound", err)
	}

	j := domain.Journey{
		MonthKey: "2025-7",
		Stages: []domain.Stage{
			{Level: 1, Name: "The Call to Adventure", StartDay: 1, EndDay: 5, Color: "#4CAF50", Length: 5, Weight: 0.8, Target: 60},
			{Level: 2, Name: "First Steps", StartDay: 6, EndDay: 10, Color: "#00BCD4", Length: 5, Weight: 0.9, Target: 68},
		},
	}
	if err := db.SaveJourney(j); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := db.LoadJourney("2025-7")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.MonthKey != "2025-7" || len(got.Stages) != 2 {
		t.Fatalf("got %+v", got)
	}
	if got.Stages[1].Target != 68 || got.Stages[1].Weight != 0.9 {
		t.Errorf("stage 2 %+v", got.Stages[1])
	}

	// Rebuilding the same month overwrites the cached row.
	j.Stages[0].Target = 75
	if err := db.SaveJourney(j); err != nil {
		t.Fatalf("resave: %v", err)
	}
	got, _ = db.LoadJourney("2025-7")
	if got.Stages[0].Target != 75 {
		t.Errorf("target after upsert %d", got.Stages[0].Target)
	}
}

func TestActivityLog(t *testing.T) {
	db := testDB(t)

	base := time.Date(2025, 7, 9, 12, 0, 0, 0, time.UTC)
	for i, label := range []string{"Trained", "Walked 30 min", "Reflected"} {
		entry := domain.ActivityEntry{
			ID:     label, // unique enough for the test
			TS:     base.Add(time.Duration(i) * time.Minute).Unix(),
			Label:  label,
			Points: 5,
		}
		if err := db.InsertActivityEntry(entry); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	recent, err := db.RecentActivity(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("len %d", len(recent))
	}
	if recent[0].Label != "Reflected" || recent[1].Label != "Walked 30 min" {
		t.Errorf("order %q, %q", recent[0].Label, recent[1].Label)
	}

	n, err := db.ActivityCountSince(base.Add(30 * time.Second).Unix())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("count since = %d, want 2", n)
	}
}

func TestNotifications(t *testing.T) {
	db := testDB(t)

	now := time.Date(2025, 7, 9, 12, 0, 0, 0, time.UTC)
	id, err := db.InsertNotification(domain.Notification{
		Type:      domain.NotifyReward,
		Title:     "Reward unlocked!",
		Body:      "Movie night",
		CreatedAt: now,
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	pending, err := db.ListPendingNotifications(10)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != id {
		t.Fatalf("pending %+v", pending)
	}

	n, err := db.NotificationCountSince(now.Add(-time.Hour).Unix())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("count %d", n)
	}

	if err := db.MarkNotificationShown(id); err != nil {
		t.Fatalf("mark: %v", err)
	}
	pending, _ = db.ListPendingNotifications(10)
	if len(pending) != 0 {
		t.Errorf("still pending %+v", pending)
	}

	if err := db.MarkNotificationShown(9999); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("mark missing err = %v, want ErrNotFound", err)
	}
}
