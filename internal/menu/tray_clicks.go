//go:build (darwin && cgo) || windows
// +build darwin,cgo windows

package menu

import (
	"context"
	"log/slog"
	"sync"

	"github.com/energye/systray"
)

// clickController drives a status item that reports left and right clicks
// separately: a left click toggles, a right click shows the static menu.
type clickController struct{}

func newTrayController() trayController {
	return &clickController{}
}

// Run blocks in systray.Run, which must own the main OS thread on macOS.
func (c *clickController) Run(ctx context.Context, bind func(StatusItem, func()) *App) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stop := context.AfterFunc(ctx, systray.Quit)
	defer stop()

	systray.Run(func() {
		item := &clickItem{}
		app := bind(item, systray.Quit)
		events := make(chan func())

		for _, entry := range app.Menu().Items() {
			action := entry.Action
			systray.AddMenuItem(entry.Label, entry.Tooltip).Click(func() {
				post(ctx, events, action)
			})
		}

		var handler ClickHandler = app
		systray.SetOnClick(func(systray.IMenu) {
			post(ctx, events, handler.OnPrimaryClick)
		})
		systray.SetOnRClick(func(m systray.IMenu) {
			item.attach(m)
			post(ctx, events, handler.OnSecondaryClick)
		})

		go dispatch(ctx, events)
	}, nil)

	return ctx.Err()
}

// clickItem holds the menu handed over by the last right click. Once a menu
// is attached it would swallow the next left click, so App detaches it right
// after showing it.
type clickItem struct {
	mu   sync.Mutex
	menu systray.IMenu
}

func (i *clickItem) attach(m systray.IMenu) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.menu = m
}

func (i *clickItem) SetTitle(title string)     { systray.SetTitle(title) }
func (i *clickItem) SetTooltip(tooltip string) { systray.SetTooltip(tooltip) }

func (i *clickItem) PopUpMenu(Menu) {
	i.mu.Lock()
	m := i.menu
	i.mu.Unlock()
	if m == nil {
		return
	}
	if err := m.ShowMenu(); err != nil {
		slog.Debug("failed to show context menu", "err", err)
	}
}

func (i *clickItem) DetachMenu() {
	i.attach(nil)
}

func (i *clickItem) CapturesClicks() bool { return true }
