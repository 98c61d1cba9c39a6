package journey

import (
	"fmt"
	"strconv"

	"github.com/heropath-app/heropath/internal/domain"
	"github.com/heropath-app/heropath/internal/infra/sqlite"
)

// Baseline KV keys in the progress table.
const (
	keyStageKey      = "stage_key"
	keyStageBaseline = "stage_baseline"
)

// Tracker persists the stage baseline: the monthly point total captured at
// the moment the active stage began. Progress inside a stage starts at zero
// — points earned in earlier stages are never retroactively credited.
type Tracker struct {
	db *sqlite.DB
}

// NewTracker creates a stage tracker.
func NewTracker(db *sqlite.DB) *Tracker {
	return &Tracker{db: db}
}

// Baseline loads the stored baseline. A missing or malformed record reads
// as a zero baseline with no stage key, which Observe treats as "transition".
func (t *Tracker) Baseline() (domain.StageBaseline, error) {
	var b domain.StageBaseline

	key, err := t.db.GetProgress(keyStageKey)
	if err != nil {
		return b, fmt.Errorf("get %s: %w", keyStageKey, err)
	}
	b.StageKey = key

	raw, err := t.db.GetProgress(keyStageBaseline)
	if err != nil {
		return b, fmt.Errorf("get %s: %w", keyStageBaseline, err)
	}
	b.Baseline, _ = strconv.Atoi(raw)
	if b.Baseline < 0 {
		b.Baseline = 0
	}

	return b, nil
}

// Observe reconciles the stored baseline against the active stage.
// If the stage key changed, a stage transition occurred: the baseline resets
// to the current monthly total and the new record is persisted. Otherwise
// the stored baseline is returned unchanged.
// The boolean reports whether a transition happened.
func (t *Tracker) Observe(j domain.Journey, active domain.Stage, monthlyPoints int) (domain.StageBaseline, bool, error) {
	stored, err := t.Baseline()
	if err != nil {
		return domain.StageBaseline{}, false, err
	}

	key := j.StageKey(active)
	if stored.StageKey == key {
		return stored, false, nil
	}

	next := domain.StageBaseline{StageKey: key, Baseline: monthlyPoints}
	if err := t.save(next); err != nil {
		return domain.StageBaseline{}, false, err
	}
	return next, true, nil
}

func (t *Tracker) save(b domain.StageBaseline) error {
	if err := t.db.SetProgress(keyStageKey, b.StageKey); err != nil {
		return fmt.Errorf("save %s: %w", keyStageKey, err)
	}
	if err := t.db.SetProgress(keyStageBaseline, strconv.Itoa(b.Baseline)); err != nil {
		return fmt.Errorf("save %s: %w", keyStageBaseline, err)
	}
	return nil
}
