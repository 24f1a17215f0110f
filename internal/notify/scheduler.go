package notify

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// DefaultDelay keeps rapid toggles from being swallowed by the notification
// center.
const DefaultDelay = time.Second

// Scheduler hands notifications to a Notifier after a fixed delay. Delivery
// is fire-and-forget: failures are logged and never retried.
type Scheduler struct {
	notifier  Notifier
	delay     time.Duration
	afterFunc func(time.Duration, func())
}

// NewScheduler wraps notifier. A negative delay is treated as zero.
func NewScheduler(notifier Notifier, delay time.Duration) *Scheduler {
	if notifier == nil {
		notifier = Discard{}
	}
	if delay < 0 {
		delay = 0
	}
	return &Scheduler{
		notifier: notifier,
		delay:    delay,
		afterFunc: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
}

// Schedule queues one notification and returns its request ID. The ID only
// ties the scheduling and delivery log lines together.
func (s *Scheduler) Schedule(title, message string) string {
	id := uuid.NewString()
	slog.Debug("notification scheduled", "id", id, "subtitle", message, "delay", s.delay)

	s.afterFunc(s.delay, func() {
		if err := s.notifier.Notify(title, message); err != nil {
			slog.Debug("notification delivery failed", "id", id, "err", err)
			return
		}
		slog.Debug("notification delivered", "id", id)
	})
	return id
}
