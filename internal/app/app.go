// Package app implements the application layer for leap.
package app

import (
	"context"
	"time"

	"go.trai.ch/leap/internal/adapters/cache"
	"go.trai.ch/leap/internal/adapters/telemetry"
	"go.trai.ch/leap/internal/core/domain"
	"go.trai.ch/leap/internal/core/ports"
	"go.trai.ch/leap/internal/engine/flow"
	"go.trai.ch/zerr"
)

// Jump rate limiting defaults. A trigger bound to a mouse gesture can fire
// far faster than any editor can launch.
const (
	DefaultJumpBudget = 20
	DefaultJumpWindow = 10 * time.Second
)

// App coordinates the jump path: registry lookup, rate limiting, launch
// and measurement.
type App struct {
	registry ports.EditorRegistry
	launcher ports.Launcher
	store    *cache.Store
	logger   ports.Logger
	timers   *telemetry.Recorder
	limiter  *flow.Limiter
}

// AppOption configures an App.
type AppOption func(*App)

// WithJumpLimiter overrides the default jump rate limiter.
func WithJumpLimiter(l *flow.Limiter) AppOption {
	return func(a *App) { a.limiter = l }
}

// New creates a new App instance.
func New(
	registry ports.EditorRegistry,
	launcher ports.Launcher,
	store *cache.Store,
	timers *telemetry.Recorder,
	logger ports.Logger,
	opts ...AppOption,
) *App {
	a := &App{
		registry: registry,
		launcher: launcher,
		store:    store,
		logger:   logger,
		timers:   timers,
		limiter:  flow.NewLimiter(DefaultJumpBudget, DefaultJumpWindow),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Jump launches the named editor at the target position. An empty
// editorName selects the registry default. Pre-launch failures (rate
// limit, unknown editor, invalid target) are returned as errors; launch
// failures are carried inside the result.
func (a *App) Jump(ctx context.Context, editorName string, target domain.ProjectContext) (domain.LaunchResult, error) {
	if !a.limiter.Allow() {
		return domain.LaunchResult{}, domain.ErrRateLimited
	}

	if err := domain.ValidateContext(target); err != nil {
		return domain.LaunchResult{}, err
	}

	editor, err := a.resolveEditor(editorName)
	if err != nil {
		return domain.LaunchResult{}, err
	}

	a.timers.Start("app.jump", map[string]string{"editor": editor.Name})
	result := a.launcher.ExecuteJump(ctx, editor, target)
	a.timers.End("app.jump")

	if result.Success {
		a.logger.Info("launched " + editor.Name + " at " + target.FilePath)
	} else {
		a.logger.Error(zerr.Wrap(result.Err, "jump to "+target.FilePath+" failed"))
	}
	return result, nil
}

func (a *App) resolveEditor(name string) (domain.EditorConfig, error) {
	if name == "" {
		return a.registry.Default()
	}
	return a.registry.Get(name)
}

// Diagnostics is a JSON-serializable snapshot of the runtime state,
// exposed for the stats command.
type Diagnostics struct {
	Cache      domain.CacheStats     `json:"cache"`
	CacheHit   float64               `json:"cache_hit_rate"`
	Executions domain.ExecStats      `json:"executions"`
	Running    int                   `json:"running_processes"`
	Editors    []domain.EditorConfig `json:"editors"`
	Timers     []telemetry.Summary   `json:"timers"`
}

// Diagnostics snapshots cache, execution and timer state along with the
// current editor configs.
func (a *App) Diagnostics() (Diagnostics, error) {
	editors, err := a.registry.List()
	if err != nil {
		return Diagnostics{}, err
	}

	cacheStats := a.store.Stats()
	return Diagnostics{
		Cache:      cacheStats,
		CacheHit:   cacheStats.HitRate(),
		Executions: a.launcher.Stats(),
		Running:    a.launcher.Running(),
		Editors:    editors,
		Timers:     a.timers.Summaries(),
	}, nil
}

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App      *App
	Logger   ports.Logger
	Registry ports.EditorRegistry
	Launcher ports.Launcher
	Store    *cache.Store
}

// Close tears down the process-wide state: tracked children are killed,
// the registry watcher stops and the cache sweeper is cancelled.
func (c *Components) Close() error {
	var errs []error
	if err := c.Launcher.KillAll(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Registry.Close(); err != nil {
		errs = append(errs, err)
	}
	c.Store.Stop()
	if len(errs) > 0 {
		return zerr.Wrap(errs[0], "shutdown incomplete")
	}
	return nil
}
