//go:build cgo && !darwin && !windows
// +build cgo,!darwin,!windows

package menu

import (
	"context"

	"github.com/getlantern/systray"
)

// systrayController backs the AppIndicator status area. AppIndicator never
// reports clicks on the icon itself, only on menu entries, so the primary
// action is offered as the first entry above the static menu.
type systrayController struct{}

func newTrayController() trayController {
	return &systrayController{}
}

// Run blocks in systray.Run until the tray quits or ctx is canceled.
func (c *systrayController) Run(ctx context.Context, bind func(StatusItem, func()) *App) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stop := context.AfterFunc(ctx, systray.Quit)
	defer stop()

	systray.Run(func() {
		app := bind(systrayItem{}, systray.Quit)
		events := make(chan func())

		toggle := systray.AddMenuItem("Toggle Sleep", "Allow or prevent idle sleep")
		go forwardClicks(ctx, toggle.ClickedCh, app.OnPrimaryClick, events)
		systray.AddSeparator()

		for _, item := range app.Menu().Items() {
			entry := systray.AddMenuItem(item.Label, item.Tooltip)
			go forwardClicks(ctx, entry.ClickedCh, item.Action, events)
		}

		go dispatch(ctx, events)
	}, nil)

	return ctx.Err()
}

// systrayItem adapts the systray package. The native menu is always attached
// and opens by itself, so popping up and detaching are no-ops.
type systrayItem struct{}

func (systrayItem) SetTitle(title string)     { systray.SetTitle(title) }
func (systrayItem) SetTooltip(tooltip string) { systray.SetTooltip(tooltip) }
func (systrayItem) PopUpMenu(Menu)            {}
func (systrayItem) DetachMenu()               {}
func (systrayItem) CapturesClicks() bool      { return false }
