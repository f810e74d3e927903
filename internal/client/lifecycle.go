package client

import "sync"

// Lifecycle is the observable foreground/background state of the hosting
// application. It satisfies the foreground signal consumed by the activation
// poller. The process starts in the foreground state.
type Lifecycle struct {
	mu         sync.Mutex
	foreground bool
	subs       map[int]chan bool
	nextSub    int
}

// NewLifecycle returns a lifecycle signal in the foreground state.
func NewLifecycle() *Lifecycle {
	return &Lifecycle{foreground: true, subs: make(map[int]chan bool)}
}

// IsForeground reports the current state.
func (l *Lifecycle) IsForeground() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.foreground
}

// SetForeground records a state change and notifies subscribers. Setting the
// current value again is a no-op.
func (l *Lifecycle) SetForeground(foreground bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.foreground == foreground {
		return
	}
	l.foreground = foreground
	for _, sub := range l.subs {
		select {
		case sub <- foreground:
		default:
			// keep only the freshest value for a slow subscriber
			select {
			case <-sub:
			default:
			}
			sub <- foreground
		}
	}
}

// Signal subscribes to foreground transitions. Only changes are delivered;
// read the current state via IsForeground. The returned func cancels the
// subscription.
func (l *Lifecycle) Signal() (<-chan bool, func()) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ch := make(chan bool, 1)
	id := l.nextSub
	l.nextSub++
	l.subs[id] = ch

	return ch, func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		if sub, ok := l.subs[id]; ok {
			delete(l.subs, id)
			close(sub)
		}
	}
}
