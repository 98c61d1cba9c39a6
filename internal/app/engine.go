// Package app wires the engine components into the single control flow the
// UI shell drives: tap → ledger → streak → reward check → stage progress,
// plus the start-of-day sync that rebuilds the journey and surfaces pending
// rollovers.
package app

import (
	"fmt"
	"time"

	"github.com/heropath-app/heropath/internal/app/calendar"
	"github.com/heropath-app/heropath/internal/app/journey"
	"github.com/heropath-app/heropath/internal/app/ledger"
	"github.com/heropath-app/heropath/internal/app/reward"
	"github.com/heropath-app/heropath/internal/app/rollover"
	"github.com/heropath-app/heropath/internal/app/streak"
	"github.com/heropath-app/heropath/internal/domain"
	"github.com/heropath-app/heropath/internal/infra/metrics"
	"github.com/heropath-app/heropath/internal/infra/sqlite"
)

// Options parameterize the engine. They come from daemon configuration and
// are never mutated.
type Options struct {
	Activities       []domain.Activity
	Stages           []domain.StageDef
	BasePointsPerDay int
	RewardThreshold  int
	DefaultReward    string
}

// Listener receives engine events. Listeners are feedback consumers only;
// nothing they do feeds back into engine state.
type Listener func(domain.Event)

// Engine is the temporal progress and state-rollover engine. One instance,
// one state document, one logical thread of control.
type Engine struct {
	db        *sqlite.DB
	opts      Options
	tracker   *journey.Tracker
	notifier  *reward.Notifier
	listeners []Listener
}

// New creates an engine over an open store.
func New(db *sqlite.DB, opts Options) *Engine {
	if opts.RewardThreshold <= 0 {
		opts.RewardThreshold = reward.DefaultThreshold
	}
	return &Engine{
		db:       db,
		opts:     opts,
		tracker:  journey.NewTracker(db),
		notifier: reward.NewNotifier(db),
	}
}

// Subscribe registers an event listener.
func (e *Engine) Subscribe(fn Listener) {
	e.listeners = append(e.listeners, fn)
}

func (e *Engine) emit(ev domain.Event) {
	for _, fn := range e.listeners {
		fn(ev)
	}
}

// Activities returns the configured catalog.
func (e *Engine) Activities() []domain.Activity {
	return e.opts.Activities
}

// Notifier exposes the stored-notification surface for the UI shell.
func (e *Engine) Notifier() *reward.Notifier {
	return e.notifier
}

// State loads the current state document. The reward text defaults from
// configuration when the user never edited it.
func (e *Engine) State() (domain.AppState, error) {
	s, err := e.db.LoadState()
	if err != nil {
		return s, fmt.Errorf("load state: %w", err)
	}
	if s.Reward == "" {
		s.Reward = e.opts.DefaultReward
	}
	return s, nil
}

// SetReward updates the user-editable reward text.
func (e *Engine) SetReward(text string) error {
	s, err := e.State()
	if err != nil {
		return err
	}
	s.Reward = text
	return e.db.SaveState(s)
}

// Journey returns the journey for now's month, building and caching it if
// the calendar month changed since the last build.
func (e *Engine) Journey(now time.Time) (domain.Journey, error) {
	key := calendar.MonthKey(now)
	if j, err := e.db.LoadJourney(key); err == nil {
		return j, nil
	} else if err != domain.ErrNotFound {
		return domain.Journey{}, fmt.Errorf("load journey: %w", err)
	}

	j := journey.Build(now, e.opts.Stages, e.opts.BasePointsPerDay)
	if err := e.db.SaveJourney(j); err != nil {
		return domain.Journey{}, fmt.Errorf("save journey: %w", err)
	}
	return j, nil
}

// StageStatus is the display bundle for the active stage.
type StageStatus struct {
	Stage    domain.Stage         `json:"stage"`
	Baseline domain.StageBaseline `json:"baseline"`
	Progress domain.StageProgress `json:"progress"`
	Insight  string               `json:"insight"`
}

// Stage computes the active stage and its baseline-relative progress,
// reconciling the stored baseline on the way.
func (e *Engine) Stage(now time.Time) (StageStatus, error) {
	s, err := e.State()
	if err != nil {
		return StageStatus{}, err
	}
	return e.observeStage(s, now)
}

func (e *Engine) observeStage(s domain.AppState, now time.Time) (StageStatus, error) {
	j, err := e.Journey(now)
	if err != nil {
		return StageStatus{}, err
	}

	active := journey.ActiveStage(j, now)
	baseline, changed, err := e.tracker.Observe(j, active, s.MonthlyPoints)
	if err != nil {
		return StageStatus{}, fmt.Errorf("observe stage: %w", err)
	}
	if changed {
		e.emit(domain.Event{
			Type:         domain.EventStageChanged,
			StageChanged: &domain.StageChanged{NewStage: active},
		})
	}

	prog := journey.Progress(s.MonthlyPoints, baseline.Baseline, active)
	metrics.StageLevel.Set(float64(active.Level))
	metrics.StageProgress.Set(float64(prog.Percent))

	return StageStatus{
		Stage:    active,
		Baseline: baseline,
		Progress: prog,
		Insight:  journey.Insight(prog.Percent),
	}, nil
}

// LogActivity records one tap of a catalog activity: ledger totals, streak,
// reward threshold, stage progress, persistence, events — one atomic
// transition.
func (e *Engine) LogActivity(label string, now time.Time) (domain.LogResult, error) {
	act, err := ledger.Lookup(e.opts.Activities, label)
	if err != nil {
		return domain.LogResult{}, err
	}

	s, err := e.State()
	if err != nil {
		return domain.LogResult{}, err
	}

	weeklyBefore := s.WeeklyPoints
	s = ledger.Record(s, calendar.WeekdayLabel(now), act.Points)
	s = streak.Update(s, now)

	unlocked := reward.Crossed(weeklyBefore, act.Points, e.opts.RewardThreshold)

	status, err := e.observeStage(s, now)
	if err != nil {
		return domain.LogResult{}, err
	}

	if err := e.db.SaveState(s); err != nil {
		return domain.LogResult{}, fmt.Errorf("save state: %w", err)
	}
	if err := e.db.InsertActivityEntry(ledger.NewEntry(act.Label, act.Points, now)); err != nil {
		return domain.LogResult{}, fmt.Errorf("log entry: %w", err)
	}

	metrics.ActivitiesRecorded.WithLabelValues(act.Label).Inc()
	metrics.PointsEarned.Add(float64(act.Points))
	metrics.StreakCurrent.Set(float64(s.StreakCurrent))
	metrics.StreakBest.Set(float64(s.StreakBest))

	e.emit(domain.Event{
		Type: domain.EventActivityRecorded,
		ActivityRecorded: &domain.ActivityRecorded{
			Label:          act.Label,
			Points:         act.Points,
			NewDailyTotal:  s.DailyPoints,
			NewWeeklyTotal: s.WeeklyPoints,
		},
	})

	if unlocked {
		metrics.RewardsUnlocked.Inc()
		if _, err := e.notifier.RewardUnlocked(s.Reward, s.WeeklyPoints, now); err != nil {
			return domain.LogResult{}, err
		}
		e.emit(domain.Event{
			Type: domain.EventRewardUnlocked,
			RewardUnlocked: &domain.RewardUnlocked{
				RewardText:  s.Reward,
				WeeklyTotal: s.WeeklyPoints,
			},
		})
	}

	return domain.LogResult{
		Label:          act.Label,
		Points:         act.Points,
		DailyPoints:    s.DailyPoints,
		WeeklyPoints:   s.WeeklyPoints,
		MonthlyPoints:  s.MonthlyPoints,
		StreakCurrent:  s.StreakCurrent,
		StreakBest:     s.StreakBest,
		Stage:          status.Stage,
		Progress:       status.Progress,
		RewardUnlocked: unlocked,
	}, nil
}

// Sync runs the start-of-day reconciliation: ensure the journey covers now's
// month, reconcile the stage baseline, and return any pending rollover
// proposals for the UI to confirm. Sync never mutates counters.
func (e *Engine) Sync(now time.Time) ([]rollover.Proposal, error) {
	s, err := e.State()
	if err != nil {
		return nil, err
	}

	if _, err := e.observeStage(s, now); err != nil {
		return nil, err
	}

	pending := rollover.Pending(s, now)
	for _, p := range pending {
		e.emit(domain.Event{
			Type: domain.EventRolloverProposed,
			RolloverProposed: &domain.RolloverProposed{
				Cadence: p.Cadence,
				Total:   p.Total,
			},
		})
	}
	return pending, nil
}

// ApplyRollovers applies every rollover pending today, then stamps the
// shared same-day guard once, so coinciding weekly and monthly boundaries
// both archive. Returns the applied proposals (empty if nothing was due).
func (e *Engine) ApplyRollovers(now time.Time) ([]rollover.Proposal, error) {
	s, err := e.State()
	if err != nil {
		return nil, err
	}

	pending := rollover.Pending(s, now)
	if len(pending) == 0 {
		return nil, nil
	}

	for _, p := range pending {
		var ev domain.Event
		s, ev = rollover.Apply(s, p)

		switch p.Cadence {
		case domain.CadenceWeekly:
			if err := e.db.AppendWeeklyHistory(s.WeeklyHistory[len(s.WeeklyHistory)-1]); err != nil {
				return nil, fmt.Errorf("archive week: %w", err)
			}
		case domain.CadenceMonthly:
			if err := e.db.AppendMonthlyHistory(s.MonthlyHistory[len(s.MonthlyHistory)-1]); err != nil {
				return nil, fmt.Errorf("archive month: %w", err)
			}
		}

		metrics.RolloversApplied.WithLabelValues(string(p.Cadence)).Inc()
		if _, err := e.notifier.RolloverApplied(p.Cadence, p.Period, p.Total, now); err != nil {
			return nil, err
		}
		e.emit(ev)
	}

	s = rollover.SetGuard(s, now)
	if err := e.db.SaveState(s); err != nil {
		return nil, fmt.Errorf("save state: %w", err)
	}
	return pending, nil
}

// RecentActivity returns the latest per-tap log entries, newest first.
func (e *Engine) RecentActivity(limit int) ([]domain.ActivityEntry, error) {
	return e.db.RecentActivity(limit)
}
