package events

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/labstack/gommon/log"
)

func newTestBus(opts ...Option) *Bus {
	quiet := log.New("test")
	quiet.SetOutput(io.Discard)
	return NewBus(append([]Option{WithLogger(quiet)}, opts...)...)
}

func TestBusDeliversToAllSubscribers(t *testing.T) {
	bus := newTestBus()

	var first, second atomic.Int32
	bus.Subscribe(KindPostLiked, func(ctx context.Context, evt Event) error {
		first.Add(1)
		return nil
	})
	bus.Subscribe(KindPostLiked, func(ctx context.Context, evt Event) error {
		second.Add(1)
		return nil
	})

	bus.Publish(PostLiked{PostID: "p1", LikerID: "u1"})
	bus.Wait()

	if got := first.Load(); got != 1 {
		t.Errorf("first handler ran %d times, want 1", got)
	}
	if got := second.Load(); got != 1 {
		t.Errorf("second handler ran %d times, want 1", got)
	}
}

func TestBusDispatchesByKind(t *testing.T) {
	bus := newTestBus()

	var likes, follows atomic.Int32
	bus.Subscribe(KindPostLiked, func(ctx context.Context, evt Event) error {
		likes.Add(1)
		return nil
	})
	bus.Subscribe(KindUserFollowed, func(ctx context.Context, evt Event) error {
		follows.Add(1)
		return nil
	})

	bus.Publish(PostLiked{PostID: "p1", LikerID: "u1"})
	bus.Wait()

	if got := likes.Load(); got != 1 {
		t.Errorf("like handler ran %d times, want 1", got)
	}
	if got := follows.Load(); got != 0 {
		t.Errorf("follow handler ran %d times, want 0", got)
	}
}

func TestBusIsolatesFailingSiblings(t *testing.T) {
	bus := newTestBus()

	var survived atomic.Int32
	bus.Subscribe(KindPostLiked, func(ctx context.Context, evt Event) error {
		panic("broken handler")
	})
	bus.Subscribe(KindPostLiked, func(ctx context.Context, evt Event) error {
		return errors.New("also broken")
	})
	bus.Subscribe(KindPostLiked, func(ctx context.Context, evt Event) error {
		survived.Add(1)
		return nil
	})

	// Publish must not raise even though two handlers fail.
	bus.Publish(PostLiked{PostID: "p1", LikerID: "u1"})
	bus.Wait()

	if got := survived.Load(); got != 1 {
		t.Errorf("surviving handler ran %d times, want 1", got)
	}
}

func TestBusUnsubscribe(t *testing.T) {
	bus := newTestBus()

	var calls atomic.Int32
	unsubscribe := bus.Subscribe(KindPostPublished, func(ctx context.Context, evt Event) error {
		calls.Add(1)
		return nil
	})

	bus.Publish(PostPublished{PostID: "p1", AuthorID: "u1"})
	bus.Wait()

	unsubscribe()
	unsubscribe() // calling twice is harmless

	bus.Publish(PostPublished{PostID: "p2", AuthorID: "u1"})
	bus.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("handler ran %d times, want 1", got)
	}
}

func TestBusDropsHungHandler(t *testing.T) {
	bus := newTestBus(WithHandlerTimeout(20 * time.Millisecond))

	release := make(chan struct{})
	defer close(release)
	bus.Subscribe(KindPostPublished, func(ctx context.Context, evt Event) error {
		<-release
		return nil
	})

	bus.Publish(PostPublished{PostID: "p1", AuthorID: "u1"})

	settled := make(chan struct{})
	go func() {
		bus.Wait()
		close(settled)
	}()

	select {
	case <-settled:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait did not return after handler timeout")
	}
}

func TestBusPublishWithoutSubscribers(t *testing.T) {
	bus := newTestBus()
	bus.Publish(UserFollowed{FollowerID: "u1", TargetID: "u2"})
	bus.Wait()
}
