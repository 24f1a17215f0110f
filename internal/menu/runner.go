package menu

import (
	"context"
	"errors"
	"log/slog"

	"github.com/example/darkcircles/internal/power"
)

// trayController runs the host status bar. bind is called once the status
// item exists, with the function that quits the tray; every click of the
// resulting App must be delivered from a single goroutine.
type trayController interface {
	Run(ctx context.Context, bind func(item StatusItem, quit func()) *App) error
}

// Runner owns the sleep guard for the lifetime of the tray.
type Runner struct {
	guard *power.Guard
	notes Scheduler
	opts  Options

	tray trayController
}

// NewRunner constructs a Runner for the platform status bar.
func NewRunner(guard *power.Guard, notes Scheduler, opts Options) *Runner {
	return &Runner{
		guard: guard,
		notes: notes,
		opts:  opts,
		tray:  newTrayController(),
	}
}

// Start runs the tray until the user quits or ctx is canceled. A held
// assertion is released on the way out.
func (r *Runner) Start(ctx context.Context) error {
	if r.guard == nil {
		return errors.New("nil sleep guard")
	}
	defer func() {
		if err := r.guard.Close(); err != nil {
			slog.Warn("failed to release power assertion on exit", "err", err)
		}
	}()

	slog.Info("Dark Circles starting", "allowSleep", r.guard.AllowSleep())
	err := r.tray.Run(ctx, r.bind)
	if errors.Is(err, context.Canceled) {
		slog.Info("Dark Circles stopping")
		return nil
	}
	return err
}

func (r *Runner) bind(item StatusItem, quit func()) *App {
	app := NewApp(r.guard, item, r.notes, BuildMenu(quit), r.opts)
	app.Init()
	return app
}
