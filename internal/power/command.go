//go:build !windows

package power

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"sync"
)

func init() {
	switch runtime.GOOS {
	case "darwin":
		register(BackendCaffeinate, newCaffeinate)
	case "linux":
		register(BackendSystemdInhibit, newSystemdInhibit)
	}
}

// commandAsserter holds the assertion by keeping a helper process alive.
// Killing the helper releases it.
type commandAsserter struct {
	name string
	args func(reason string) []string

	mu  sync.Mutex
	cmd *exec.Cmd
}

func newCaffeinate() Asserter {
	return &commandAsserter{
		name: "caffeinate",
		args: func(string) []string {
			// -i: prevent idle sleep
			// -w <pid>: exit on its own once we are gone
			return []string{"-i", "-w", strconv.Itoa(os.Getpid())}
		},
	}
}

func newSystemdInhibit() Asserter {
	return &commandAsserter{
		name: "systemd-inhibit",
		args: func(reason string) []string {
			return []string{
				"--what=idle:sleep",
				"--who=darkcircles",
				"--why=" + reason,
				"--mode=block",
				"sleep", "infinity",
			}
		},
	}
}

func (c *commandAsserter) Assert(level Level, reason string) error {
	if level == LevelOn {
		return c.start(reason)
	}
	c.stop()
	return nil
}

func (c *commandAsserter) start(reason string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cmd != nil {
		return nil
	}

	path, err := exec.LookPath(c.name)
	if err != nil {
		return fmt.Errorf("%w: %s not found: %w", ErrAssertion, c.name, err)
	}

	cmd := exec.Command(path, c.args(reason)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: start %s: %w", ErrAssertion, c.name, err)
	}
	c.cmd = cmd

	// Reap the helper so it does not linger as a zombie.
	go func() { _ = cmd.Wait() }()
	return nil
}

func (c *commandAsserter) stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cmd != nil && c.cmd.Process != nil {
		_ = c.cmd.Process.Kill()
	}
	c.cmd = nil
}

func (c *commandAsserter) running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cmd != nil
}
