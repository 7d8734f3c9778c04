package events

import (
	"context"
	"sync"
	"time"

	"github.com/labstack/gommon/log"
)

// DefaultHandlerTimeout bounds a single handler invocation. A handler that
// has not returned by then is logged and abandoned.
const DefaultHandlerTimeout = 10 * time.Second

// Handler consumes a single event. A returned error is logged at the bus
// boundary and never reaches the publisher.
type Handler func(ctx context.Context, evt Event) error

// Unsubscribe removes the registration created by Subscribe. Calling it more
// than once is harmless.
type Unsubscribe func()

// Bus is an in-process publish/subscribe dispatcher. Publishing is
// fire-and-forget: handlers run on background goroutines so the triggering
// request never waits on notification work. There is no persistence and no
// ordering guarantee across handlers.
//
// A Bus is constructed explicitly and injected where needed; tests create
// isolated instances instead of sharing global state.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Kind]map[int]Handler
	nextID   int

	timeout time.Duration
	logger  *log.Logger
	wg      sync.WaitGroup
}

// Option configures a Bus.
type Option func(*Bus)

// WithHandlerTimeout overrides DefaultHandlerTimeout.
func WithHandlerTimeout(d time.Duration) Option {
	return func(b *Bus) { b.timeout = d }
}

// WithLogger overrides the default "events"-prefixed logger.
func WithLogger(l *log.Logger) Option {
	return func(b *Bus) { b.logger = l }
}

// NewBus creates an empty bus.
func NewBus(opts ...Option) *Bus {
	b := &Bus{
		handlers: make(map[Kind]map[int]Handler),
		timeout:  DefaultHandlerTimeout,
		logger:   log.New("events"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers a handler for one event kind. Multiple handlers per
// kind are allowed and run independently of each other.
func (b *Bus) Subscribe(kind Kind, h Handler) Unsubscribe {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.handlers[kind] == nil {
		b.handlers[kind] = make(map[int]Handler)
	}
	id := b.nextID
	b.nextID++
	b.handlers[kind][id] = h

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.handlers[kind], id)
		})
	}
}

// Publish schedules every handler registered for the event's kind and returns
// immediately. Handler errors and panics are logged and swallowed; a failing
// handler never affects its siblings or the publisher.
func (b *Bus) Publish(evt Event) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.handlers[evt.Kind()]))
	for _, h := range b.handlers[evt.Kind()] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		b.wg.Add(1)
		go b.dispatch(h, evt)
	}
}

// Wait blocks until every handler scheduled so far has settled (returned,
// panicked, or timed out). Used during graceful shutdown and in tests.
func (b *Bus) Wait() {
	b.wg.Wait()
}

func (b *Bus) dispatch(h Handler, evt Event) {
	defer b.wg.Done()

	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				b.logger.Errorf("handler panic on %s: %v", evt.Kind(), r)
				done <- nil
			}
		}()
		done <- h(ctx, evt)
	}()

	select {
	case err := <-done:
		if err != nil {
			b.logger.Errorf("handler failed on %s: %v", evt.Kind(), err)
		}
	case <-ctx.Done():
		// The handler goroutine is abandoned; a hung handler is a bug,
		// not a supported state.
		b.logger.Errorf("handler timed out on %s after %s", evt.Kind(), b.timeout)
	}
}
