package store

import "sync"

const signalBuffer = 16

// signalHub fans committed writes out to subscribers. Publishing never
// blocks: when a subscriber's buffer is full the oldest queued value is
// dropped so the latest state always gets through. Subscribers consume
// level-triggered current values and must track previous values themselves
// for edge detection.
type signalHub[T any] struct {
	mu   sync.Mutex
	subs map[int]subscription[T]
	next int
}

type subscription[T any] struct {
	ch     chan T
	filter func(T) bool
}

func newSignalHub[T any]() *signalHub[T] {
	return &signalHub[T]{subs: make(map[int]subscription[T])}
}

// subscribe registers a subscriber. A nil filter receives every value.
// The returned cancel func removes the subscription and closes the channel.
func (h *signalHub[T]) subscribe(filter func(T) bool) (<-chan T, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.next
	h.next++

	ch := make(chan T, signalBuffer)
	h.subs[id] = subscription[T]{ch: ch, filter: filter}

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub.ch)
		}
	}

	return ch, cancel
}

func (h *signalHub[T]) publish(v T) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subs {
		if sub.filter != nil && !sub.filter(v) {
			continue
		}
		for {
			select {
			case sub.ch <- v:
			default:
				// Buffer full: drop the oldest value and retry so the
				// subscriber still ends up seeing the newest state.
				select {
				case <-sub.ch:
				default:
				}
				continue
			}
			break
		}
	}
}
