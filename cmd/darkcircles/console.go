package main

import (
	"os"
	"strings"
)

// showConsole reports whether the tray should keep its console window.
func showConsole(flag bool) bool {
	if flag {
		return true
	}
	return strings.TrimSpace(os.Getenv("DARKCIRCLES_SHOW_CONSOLE")) != ""
}
