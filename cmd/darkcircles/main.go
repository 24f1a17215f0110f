package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/charmbracelet/fang"
)

// Build variables set by ldflags
var (
	version     = "dev"
	buildCommit = "dev"
)

func init() {
	// The status bar must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := fang.Execute(ctx, newRootCmd(), fang.WithVersion(version), fang.WithCommit(buildCommit))
	stop()
	if err != nil {
		os.Exit(1)
	}
}
