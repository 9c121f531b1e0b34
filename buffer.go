package streamecho

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

var errConsumerGone = errors.New("outbound buffer consumer has gone away")

// outboundBuffer is a bounded FIFO that connects the goroutine consuming a
// call's inbound half (the only producer) to the handler sending on the
// outbound half (the only consumer). When the buffer is full, push blocks,
// which in turn stops the producer from reading more requests.
//
// The producer calls close when it will push nothing more. The consumer
// calls cancel when it will dequeue nothing more, after which any pending
// or future push fails fast.
type outboundBuffer[T any] struct {
	ch chan T

	gone     chan struct{}
	doCancel sync.Once
	doClose  sync.Once
}

func newOutboundBuffer[T any](size int) *outboundBuffer[T] {
	if size < 1 {
		size = 1
	}
	return &outboundBuffer[T]{
		ch:   make(chan T, size),
		gone: make(chan struct{}),
	}
}

func (b *outboundBuffer[T]) push(ctx context.Context, item T) error {
	// If the consumer is already gone, don't race it against free capacity in ch
	select {
	case <-b.gone:
		return errConsumerGone
	default:
	}
	select {
	case b.ch <- item:
		return nil
	case <-b.gone:
		return errConsumerGone
	case <-ctx.Done():
		return ctx.Err()
	}
}

// close must only be called by the producer.
func (b *outboundBuffer[T]) close() {
	b.doClose.Do(func() {
		close(b.ch)
	})
}

func (b *outboundBuffer[T]) cancel() {
	b.doCancel.Do(func() {
		close(b.gone)
	})
}

// dequeue returns the next item. It returns false once the buffer is closed
// and drained, or when ctx is done.
func (b *outboundBuffer[T]) dequeue(ctx context.Context) (T, bool) {
	var zero T
	// If there's an item in ch, make sure to use it
	// before potentially looking at ctx
	select {
	case t, ok := <-b.ch:
		return t, ok
	default:
	}
	select {
	case t, ok := <-b.ch:
		return t, ok
	case <-ctx.Done():
		return zero, false
	}
}

func (b *outboundBuffer[T]) len() int {
	return len(b.ch)
}
