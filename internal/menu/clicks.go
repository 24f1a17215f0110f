package menu

import "context"

// dispatch runs queued click handlers one at a time, so the App only ever
// sees a single goroutine. It returns when ctx ends or events is closed.
func dispatch(ctx context.Context, events <-chan func()) {
	for {
		select {
		case <-ctx.Done():
			return
		case fn, ok := <-events:
			if !ok {
				return
			}
			fn()
		}
	}
}

// post queues fn for dispatch. It reports false once ctx has ended.
func post(ctx context.Context, events chan<- func(), fn func()) bool {
	select {
	case events <- fn:
		return true
	case <-ctx.Done():
		return false
	}
}

// forwardClicks turns every receive on ch into a queued action.
func forwardClicks(ctx context.Context, ch <-chan struct{}, action func(), events chan<- func()) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			if !post(ctx, events, action) {
				return
			}
		}
	}
}
