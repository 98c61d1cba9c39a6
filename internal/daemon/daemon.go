package daemon

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/heropath-app/heropath/internal/api"
	"github.com/heropath-app/heropath/internal/app"
	"github.com/heropath-app/heropath/internal/app/rollover"
	"github.com/heropath-app/heropath/internal/domain"
	"github.com/heropath-app/heropath/internal/health"
	_ "github.com/heropath-app/heropath/internal/infra/metrics" // Register Prometheus metrics
	"github.com/heropath-app/heropath/internal/infra/sqlite"
)

// Daemon is the heropath runtime. It wires the store, the engine, and the
// API server together, and runs the start-of-day sync on construction.
type Daemon struct {
	Config Config
	DB     *sqlite.DB
	Engine *app.Engine
	Server *api.Server
	Health *health.Checker

	// Pending holds the rollover proposals found at startup, awaiting
	// user confirmation.
	Pending []rollover.Proposal

	cancel context.CancelFunc
}

// New creates and initializes a Daemon with all services wired.
func New() (*Daemon, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Daemon with the given configuration.
func NewWithConfig(cfg Config) (*Daemon, error) {
	db, err := sqlite.Open(heropathHome())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	engine := app.New(db, app.Options{
		Activities:       cfg.Catalog(),
		Stages:           cfg.Stages,
		BasePointsPerDay: cfg.Engine.BasePointsPerDay,
		RewardThreshold:  cfg.Engine.WeeklyRewardThreshold,
		DefaultReward:    cfg.Engine.DefaultReward,
	})
	engine.Subscribe(logEvents)

	srv := api.NewServer(engine)
	if cfg.Telemetry.Prometheus {
		srv.EnableMetrics()
	}

	d := &Daemon{
		Config: cfg,
		DB:     db,
		Engine: engine,
		Server: srv,
	}

	d.Health = health.NewChecker(db, engine)
	srv.SetHealthChecker(d.Health)

	// Start-of-day reconciliation: rebuild the journey if the month
	// changed and surface any pending period boundary.
	pending, err := engine.Sync(time.Now())
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("sync: %w", err)
	}
	d.Pending = pending

	return d, nil
}

// Serve starts the HTTP server and blocks until shutdown.
func (d *Daemon) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	go d.Health.Run(ctx)

	addr := fmt.Sprintf("%s:%d", d.Config.API.Host, d.Config.API.Port)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      d.Server.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	// Graceful shutdown on signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		_ = httpServer.Shutdown(shutdownCtx)
		_ = d.DB.Close()
	}()

	fmt.Printf("heropath serving on http://%s\n", addr)
	if d.Config.Telemetry.Prometheus {
		fmt.Printf("  Metrics: http://%s/metrics\n", addr)
	}
	for _, p := range d.Pending {
		fmt.Printf("  Pending %s rollover (%d points) — confirm via POST /api/rollover/apply\n",
			p.Cadence, p.Total)
	}

	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close shuts down all daemon resources.
func (d *Daemon) Close() {
	if d.cancel != nil {
		d.cancel()
	}
	if d.DB != nil {
		_ = d.DB.Close()
	}
}

// logEvents is the default engine listener: one log line per event.
func logEvents(ev domain.Event) {
	switch ev.Type {
	case domain.EventActivityRecorded:
		a := ev.ActivityRecorded
		log.Printf("[engine] +%d pts (%s) — day %d, week %d", a.Points, a.Label, a.NewDailyTotal, a.NewWeeklyTotal)
	case domain.EventStageChanged:
		s := ev.StageChanged.NewStage
		log.Printf("[engine] stage changed: L%d %s (target %d pts)", s.Level, s.Name, s.Target)
	case domain.EventRolloverProposed:
		p := ev.RolloverProposed
		log.Printf("[engine] %s rollover proposed (%d pts)", p.Cadence, p.Total)
	case domain.EventRolloverApplied:
		p := ev.RolloverApplied
		log.Printf("[engine] %s rollover applied: %s archived with %d pts", p.Cadence, p.Period, p.ArchivedTotal)
	case domain.EventRewardUnlocked:
		r := ev.RewardUnlocked
		log.Printf("[engine] reward unlocked at %d weekly pts: %s", r.WeeklyTotal, r.RewardText)
	}
}
