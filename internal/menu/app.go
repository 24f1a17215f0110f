package menu

import (
	"errors"
	"log/slog"

	"github.com/example/darkcircles/internal/power"
)

// ClickHandler receives status-item clicks.
type ClickHandler interface {
	OnPrimaryClick()
	OnSecondaryClick()
}

// StatusItem is the host status-bar surface.
type StatusItem interface {
	SetTitle(title string)
	SetTooltip(tooltip string)
	PopUpMenu(m Menu)
	// DetachMenu drops the attached menu after it was shown.
	DetachMenu()
	// CapturesClicks reports whether an attached menu swallows later clicks.
	CapturesClicks() bool
}

// SleepGuard is the state App toggles. *power.Guard satisfies it.
type SleepGuard interface {
	AllowSleep() bool
	Toggle() (bool, error)
}

// Scheduler queues delayed notifications and returns a request ID for log
// correlation. *notify.Scheduler satisfies it.
type Scheduler interface {
	Schedule(title, message string) string
}

// Options tune the presentation.
type Options struct {
	Glyphs            Glyphs
	Tooltip           string
	NotificationTitle string
}

// App is the application state handed to the tray's click loop.
type App struct {
	guard  SleepGuard
	item   StatusItem
	notes  Scheduler
	menu   Menu
	glyphs Glyphs

	tooltip string
	title   string
}

// NewApp wires the guard to a status item and notification scheduler.
func NewApp(guard SleepGuard, item StatusItem, notes Scheduler, m Menu, opts Options) *App {
	glyphs := opts.Glyphs
	if glyphs.Allowed == "" || glyphs.Blocked == "" {
		glyphs = DefaultGlyphs()
	}
	title := opts.NotificationTitle
	if title == "" {
		title = "Dark Circles"
	}
	return &App{
		guard:   guard,
		item:    item,
		notes:   notes,
		menu:    m,
		glyphs:  glyphs,
		tooltip: opts.Tooltip,
		title:   title,
	}
}

// Init renders the starting state.
func (a *App) Init() {
	if a.tooltip != "" {
		a.item.SetTooltip(a.tooltip)
	}
	a.RenderIcon(a.guard.AllowSleep())
}

// Menu returns the static context menu.
func (a *App) Menu() Menu {
	return a.menu
}

// RenderIcon sets the status item glyph.
func (a *App) RenderIcon(allowSleep bool) {
	a.item.SetTitle(a.glyphs.For(allowSleep))
}

// Notify schedules the state-change notification.
func (a *App) Notify(allowSleep bool) {
	if a.notes == nil {
		return
	}
	id := a.notes.Schedule(a.title, Subtitle(allowSleep))
	slog.Debug("state change notification queued", "id", id, "allowSleep", allowSleep)
}

// OnPrimaryClick toggles sleep prevention. An assertion failure is only
// logged: glyph and notification follow the flipped flag regardless.
func (a *App) OnPrimaryClick() {
	allowSleep, err := a.guard.Toggle()
	if err != nil {
		if errors.Is(err, power.ErrAssertion) {
			slog.Warn("power assertion request failed; displayed state may not match the OS", "allowSleep", allowSleep, "err", err)
		} else {
			slog.Error("sleep toggle failed", "err", err)
		}
	}
	a.RenderIcon(allowSleep)
	a.Notify(allowSleep)
}

// OnSecondaryClick shows the context menu without touching sleep state.
func (a *App) OnSecondaryClick() {
	a.item.PopUpMenu(a.menu)
	if a.item.CapturesClicks() {
		a.item.DetachMenu()
	}
}
