// Package power keeps the machine awake on request. A Guard owns the
// "allow sleep" flag and drives an Asserter, the platform mechanism that
// actually holds the idle-sleep assertion.
package power

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strings"
)

// Level is the requested state of the idle-sleep assertion.
type Level int

const (
	// LevelOff releases the assertion; the OS may idle-sleep again.
	LevelOff Level = iota
	// LevelOn holds the assertion; idle sleep is prevented.
	LevelOn
)

func (l Level) String() string {
	if l == LevelOn {
		return "on"
	}
	return "off"
}

// ErrAssertion is wrapped by every error an Asserter returns when the OS
// declines to create or release the assertion.
var ErrAssertion = errors.New("power assertion failed")

// Asserter creates and releases the OS idle-sleep assertion. Implementations
// are idempotent per level: asserting LevelOn twice keeps a single assertion.
type Asserter interface {
	Assert(level Level, reason string) error
}

// Backend names accepted by New.
const (
	BackendAuto           = "auto"
	BackendNone           = "none"
	BackendIOKit          = "iokit"
	BackendCaffeinate     = "caffeinate"
	BackendSystemdInhibit = "systemd-inhibit"
	BackendLogin1         = "login1"
	BackendExecState      = "execstate"
)

var backends = map[string]func() Asserter{
	BackendNone: func() Asserter { return noopAsserter{} },
}

// preferred lists backends in the order auto selection tries them. The
// helper-process backends are only used when named explicitly.
var preferred = []string{
	BackendIOKit,
	BackendLogin1,
	BackendExecState,
}

func register(name string, ctor func() Asserter) {
	backends[name] = ctor
}

// New returns the Asserter registered under backend. An empty name or
// "auto" picks the best mechanism available on this platform.
func New(backend string) (Asserter, error) {
	name := strings.ToLower(strings.TrimSpace(backend))
	if name == "" || name == BackendAuto {
		name = DefaultBackend()
	}

	ctor, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("unsupported power backend %q on %s (available: %s)", backend, runtime.GOOS, strings.Join(Backends(), ", "))
	}
	return ctor(), nil
}

// DefaultBackend reports the backend "auto" resolves to.
func DefaultBackend() string {
	for _, name := range preferred {
		if _, ok := backends[name]; ok {
			return name
		}
	}
	return BackendNone
}

// Backends lists the backend names usable on this platform.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type noopAsserter struct{}

func (noopAsserter) Assert(Level, string) error { return nil }
