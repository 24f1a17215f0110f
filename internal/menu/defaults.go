package menu

// Item is a single entry of the context menu.
type Item struct {
	Label   string
	Tooltip string
	Action  func()
}

// Menu is the immutable context menu shown on a secondary click.
type Menu struct {
	items []Item
}

// BuildMenu returns the static menu: a single "Quit" entry bound to quit.
func BuildMenu(quit func()) Menu {
	if quit == nil {
		quit = func() {}
	}
	return Menu{items: []Item{
		{
			Label:   "Quit",
			Tooltip: "Quit Dark Circles",
			Action:  quit,
		},
	}}
}

// Items returns a copy of the menu entries.
func (m Menu) Items() []Item {
	out := make([]Item, len(m.items))
	copy(out, m.items)
	return out
}
