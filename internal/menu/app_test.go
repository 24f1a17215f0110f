package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/darkcircles/internal/power"
)

type fakeAsserter struct {
	levels []power.Level
	err    error
}

func (f *fakeAsserter) Assert(level power.Level, _ string) error {
	f.levels = append(f.levels, level)
	return f.err
}

type fakeItem struct {
	titles   []string
	tooltip  string
	popups   int
	detached int
	captures bool
}

func (f *fakeItem) SetTitle(title string)     { f.titles = append(f.titles, title) }
func (f *fakeItem) SetTooltip(tooltip string) { f.tooltip = tooltip }
func (f *fakeItem) PopUpMenu(Menu)            { f.popups++ }
func (f *fakeItem) DetachMenu()               { f.detached++ }
func (f *fakeItem) CapturesClicks() bool      { return f.captures }

func (f *fakeItem) current() string {
	if len(f.titles) == 0 {
		return ""
	}
	return f.titles[len(f.titles)-1]
}

type scheduled struct {
	title, message string
}

type fakeScheduler struct {
	sent []scheduled
}

func (f *fakeScheduler) Schedule(title, message string) string {
	f.sent = append(f.sent, scheduled{title: title, message: message})
	return "id"
}

type fixture struct {
	asserter *fakeAsserter
	guard    *power.Guard
	item     *fakeItem
	notes    *fakeScheduler
	app      *App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		asserter: &fakeAsserter{},
		item:     &fakeItem{},
		notes:    &fakeScheduler{},
	}
	f.guard = power.NewGuard(f.asserter, "test")
	f.app = NewApp(f.guard, f.item, f.notes, BuildMenu(nil), Options{Tooltip: "Dark Circles"})
	f.app.Init()
	return f
}

func TestInitRendersAllowedGlyph(t *testing.T) {
	f := newFixture(t)

	assert.True(t, f.guard.AllowSleep())
	assert.Equal(t, "😴", f.item.current())
	assert.Equal(t, "Dark Circles", f.item.tooltip)
	assert.Empty(t, f.notes.sent)
	assert.Empty(t, f.asserter.levels)
}

func TestPrimaryClickBlocksSleep(t *testing.T) {
	f := newFixture(t)

	f.app.OnPrimaryClick()

	assert.False(t, f.guard.AllowSleep())
	assert.Equal(t, "👀", f.item.current())
	require.Len(t, f.notes.sent, 1)
	assert.Equal(t, scheduled{title: "Dark Circles", message: SubtitleBlocked}, f.notes.sent[0])
	assert.Equal(t, []power.Level{power.LevelOn}, f.asserter.levels)
}

func TestPrimaryClickTwiceRestoresState(t *testing.T) {
	f := newFixture(t)

	f.app.OnPrimaryClick()
	f.app.OnPrimaryClick()

	assert.True(t, f.guard.AllowSleep())
	assert.Equal(t, "😴", f.item.current())
	require.Len(t, f.notes.sent, 2)
	assert.Equal(t, SubtitleAllowed, f.notes.sent[1].message)
	assert.Equal(t, []power.Level{power.LevelOn, power.LevelOff}, f.asserter.levels)
}

func TestPrimaryClickParity(t *testing.T) {
	for n := 1; n <= 6; n++ {
		f := newFixture(t)
		for i := 0; i < n; i++ {
			f.app.OnPrimaryClick()
		}
		want := n%2 == 0
		assert.Equal(t, want, f.guard.AllowSleep(), "after %d clicks", n)
		assert.Equal(t, DefaultGlyphs().For(want), f.item.current())
		assert.Equal(t, Subtitle(want), f.notes.sent[len(f.notes.sent)-1].message)
	}
}

func TestPrimaryClickWithAssertionFailureStillFlips(t *testing.T) {
	f := newFixture(t)
	f.asserter.err = power.ErrAssertion

	f.app.OnPrimaryClick()

	// The displayed state follows the flag even though the OS refused.
	assert.False(t, f.guard.AllowSleep())
	assert.Equal(t, "👀", f.item.current())
	require.Len(t, f.notes.sent, 1)
	assert.Equal(t, SubtitleBlocked, f.notes.sent[0].message)
}

func TestSecondaryClickShowsMenuOnly(t *testing.T) {
	f := newFixture(t)
	f.app.OnPrimaryClick()
	f.asserter.levels = nil
	f.notes.sent = nil

	f.app.OnSecondaryClick()

	assert.Equal(t, 1, f.item.popups)
	assert.False(t, f.guard.AllowSleep())
	assert.Empty(t, f.asserter.levels)
	assert.Empty(t, f.notes.sent)
	assert.Zero(t, f.item.detached, "menu stays attached when it does not capture clicks")
}

func TestSecondaryClickDetachesCapturingMenu(t *testing.T) {
	f := newFixture(t)
	f.item.captures = true

	f.app.OnSecondaryClick()
	f.app.OnPrimaryClick()

	assert.Equal(t, 1, f.item.detached)
	assert.False(t, f.guard.AllowSleep(), "primary clicks still reach the handler after the menu")
}

func TestCustomGlyphs(t *testing.T) {
	item := &fakeItem{}
	app := NewApp(power.NewGuard(nil, ""), item, nil, BuildMenu(nil), Options{
		Glyphs: Glyphs{Allowed: "A", Blocked: "B"},
	})
	app.Init()
	app.OnPrimaryClick()

	assert.Equal(t, []string{"A", "B"}, item.titles)
}
