package journey_test

import (
	"testing"
	"time"

	"github.com/heropath-app/heropath/internal/app/journey"
	"github.com/heropath-app/heropath/internal/infra/sqlite"
)

func testDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db, err := sqlite.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestTracker_FirstObservationIsTransition(t *testing.T) {
	db := testDB(t)
	tr := journey.NewTracker(db)
	j := journey.Build(time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), testDefs(), 15)

	b, changed, err := tr.Observe(j, j.Stages[0], 25)
	if err != nil {
		t.Fatalf("observe: %v", err)
	}
	if !changed {
		t.Error("first observation should count as a transition")
	}
	if b.StageKey != "2025-7-L1" {
		t.Errorf("stage key %q", b.StageKey)
	}
	if b.Baseline != 25 {
		t.Errorf("baseline %d, want 25", b.Baseline)
	}
}

func TestTracker_SameStageKeepsBaseline(t *testing.T) {
	db := testDB(t)
	tr := journey.NewTracker(db)
	j := journey.Build(time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), testDefs(), 15)

	if _, _, err := tr.Observe(j, j.Stages[0], 10); err != nil {
		t.Fatalf("observe: %v", err)
	}

	// Monthly points grew, stage did not change — baseline must not move.
	b, changed, err := tr.Observe(j, j.Stages[0], 50)
	if err != nil {
		t.Fatalf("observe: %v", err)
	}
	if changed {
		t.Error("same stage must not be a transition")
	}
	if b.Baseline != 10 {
		t.Errorf("baseline %d, want 10", b.Baseline)
	}
}

func TestTracker_TransitionResetsBaseline(t *testing.T) {
	db := testDB(t)
	tr := journey.NewTracker(db)
	j := journey.Build(time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), testDefs(), 15)

	if _, _, err := tr.Observe(j, j.Stages[1], 80); err != nil {
		t.Fatalf("observe: %v", err)
	}

	// Entering stage 3 with 120 monthly points: progress restarts at zero.
	b, changed, err := tr.Observe(j, j.Stages[2], 120)
	if err != nil {
		t.Fatalf("observe: %v", err)
	}
	if !changed {
		t.Error("level 2 → 3 should be a transition")
	}
	if b.Baseline != 120 {
		t.Errorf("baseline %d, want 120", b.Baseline)
	}

	prog := journey.Progress(120, b.Baseline, j.Stages[2])
	if prog.Points != 0 {
		t.Errorf("progress after transition = %d, want 0", prog.Points)
	}
}

func TestTracker_BaselineSurvivesReload(t *testing.T) {
	db := testDB(t)
	j := journey.Build(time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), testDefs(), 15)

	if _, _, err := journey.NewTracker(db).Observe(j, j.Stages[0], 33); err != nil {
		t.Fatalf("observe: %v", err)
	}

	// A fresh tracker over the same store reads the persisted record.
	b, err := journey.NewTracker(db).Baseline()
	if err != nil {
		t.Fatalf("baseline: %v", err)
	}
	if b.StageKey != "2025-7-L1" || b.Baseline != 33 {
		t.Errorf("reloaded baseline = %+v", b)
	}
}
