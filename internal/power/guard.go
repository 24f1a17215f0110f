package power

import (
	"fmt"
	"log/slog"
	"sync"
)

// Guard owns the process-wide "allow sleep" flag and keeps the OS assertion
// in line with it.
type Guard struct {
	mu         sync.Mutex
	asserter   Asserter
	reason     string
	allowSleep bool
	// held mirrors the last level the asserter accepted.
	held bool
}

// NewGuard returns a Guard in the "sleep allowed" state. No assertion is
// requested until the first Toggle.
func NewGuard(asserter Asserter, reason string) *Guard {
	if asserter == nil {
		asserter = noopAsserter{}
	}
	return &Guard{
		asserter:   asserter,
		reason:     reason,
		allowSleep: true,
	}
}

// AllowSleep reports the current flag.
func (g *Guard) AllowSleep() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.allowSleep
}

// Toggle flips the flag exactly once and applies the matching assertion
// level. The flag is not rolled back when the asserter fails: the returned
// state is always the flipped one, and err wraps ErrAssertion.
func (g *Guard) Toggle() (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.allowSleep = !g.allowSleep
	level := LevelOn
	if g.allowSleep {
		level = LevelOff
	}

	if err := g.asserter.Assert(level, g.reason); err != nil {
		return g.allowSleep, fmt.Errorf("apply %s assertion: %w", level, err)
	}
	g.held = level == LevelOn
	slog.Debug("power assertion applied", "level", level, "allowSleep", g.allowSleep)
	return g.allowSleep, nil
}

// Close releases a held assertion. It is safe to call more than once.
func (g *Guard) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.held {
		return nil
	}
	if err := g.asserter.Assert(LevelOff, g.reason); err != nil {
		return fmt.Errorf("release assertion: %w", err)
	}
	g.held = false
	return nil
}
