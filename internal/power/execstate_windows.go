//go:build windows

package power

import (
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sys/windows"
)

const (
	esContinuous     = 0x80000000
	esSystemRequired = 0x00000001
)

func init() {
	register(BackendExecState, func() Asserter { return &execStateAsserter{} })
}

// execStateAsserter calls SetThreadExecutionState. The state belongs to the
// calling OS thread, so every call runs on one locked worker goroutine.
type execStateAsserter struct {
	once sync.Once
	reqs chan execStateRequest
}

type execStateRequest struct {
	flags uintptr
	done  chan error
}

func (e *execStateAsserter) Assert(level Level, _ string) error {
	e.once.Do(e.startWorker)

	flags := uintptr(esContinuous)
	if level == LevelOn {
		flags |= esSystemRequired
	}
	req := execStateRequest{flags: flags, done: make(chan error, 1)}
	e.reqs <- req
	return <-req.done
}

func (e *execStateAsserter) startWorker() {
	e.reqs = make(chan execStateRequest)
	proc := windows.NewLazySystemDLL("kernel32.dll").NewProc("SetThreadExecutionState")

	go func() {
		runtime.LockOSThread()
		for req := range e.reqs {
			if err := proc.Find(); err != nil {
				req.done <- fmt.Errorf("%w: %w", ErrAssertion, err)
				continue
			}
			prev, _, callErr := proc.Call(req.flags)
			if prev == 0 {
				req.done <- fmt.Errorf("%w: SetThreadExecutionState(%#x): %v", ErrAssertion, req.flags, callErr)
				continue
			}
			req.done <- nil
		}
	}()
}
