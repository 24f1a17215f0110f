// Package notify delivers desktop notifications.
package notify

import "github.com/gen2brain/beeep"

// Notifier sends a desktop notification.
type Notifier interface {
	Notify(title, message string) error
}

// BeeepNotifier delivers through the platform notification center.
type BeeepNotifier struct {
	// Icon is an optional path to an icon shown with the notification.
	Icon string
}

// Notify sends a desktop notification.
func (n BeeepNotifier) Notify(title, message string) error {
	return beeep.Notify(title, message, n.Icon)
}

// Discard drops every notification.
type Discard struct{}

// Notify does nothing.
func (Discard) Notify(string, string) error { return nil }
