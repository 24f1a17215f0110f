//go:build linux

package power

import (
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"
	"golang.org/x/sys/unix"
)

const (
	login1Dest   = "org.freedesktop.login1"
	login1Path   = "/org/freedesktop/login1"
	login1Method = "org.freedesktop.login1.Manager.Inhibit"
)

func init() {
	register(BackendLogin1, func() Asserter { return &login1Asserter{} })
}

// login1Asserter takes a logind "block" inhibitor lock. The lock lives as
// long as the returned file descriptor stays open.
type login1Asserter struct {
	mu sync.Mutex
	fd int
	on bool
}

func (l *login1Asserter) Assert(level Level, reason string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level == LevelOn {
		if l.on {
			return nil
		}
		conn, err := dbus.SystemBus()
		if err != nil {
			return fmt.Errorf("%w: connect system bus: %w", ErrAssertion, err)
		}
		var fd dbus.UnixFD
		call := conn.Object(login1Dest, dbus.ObjectPath(login1Path)).
			Call(login1Method, 0, "idle:sleep", "darkcircles", reason, "block")
		if err := call.Store(&fd); err != nil {
			return fmt.Errorf("%w: logind inhibit: %w", ErrAssertion, err)
		}
		l.fd = int(fd)
		l.on = true
		return nil
	}

	if !l.on {
		return nil
	}
	if err := unix.Close(l.fd); err != nil {
		return fmt.Errorf("%w: close inhibitor fd %d: %w", ErrAssertion, l.fd, err)
	}
	l.on = false
	return nil
}
