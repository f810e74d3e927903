package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycle_StartsInForeground(t *testing.T) {
	lc := NewLifecycle()
	assert.True(t, lc.IsForeground())
}

func TestLifecycle_SignalDeliversTransitions(t *testing.T) {
	lc := NewLifecycle()

	events, cancel := lc.Signal()
	defer cancel()

	lc.SetForeground(false)

	select {
	case v := <-events:
		assert.False(t, v)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for transition")
	}
	assert.False(t, lc.IsForeground())

	lc.SetForeground(true)
	select {
	case v := <-events:
		assert.True(t, v)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for transition")
	}
}

func TestLifecycle_SettingSameValueIsNoop(t *testing.T) {
	lc := NewLifecycle()

	events, cancel := lc.Signal()
	defer cancel()

	// уже foreground: повтор не рождает событие
	lc.SetForeground(true)
	assert.Empty(t, events)
}

func TestLifecycle_CancelClosesSubscription(t *testing.T) {
	lc := NewLifecycle()

	events, cancel := lc.Signal()
	cancel()

	_, open := <-events
	require.False(t, open)

	// публикация после отмены не паникует
	lc.SetForeground(false)

	// повторная отмена — no-op
	cancel()
}

func TestLifecycle_SlowSubscriberKeepsFreshestValue(t *testing.T) {
	lc := NewLifecycle()

	events, cancel := lc.Signal()
	defer cancel()

	// буфер на одно значение: серия переключений оставляет самое свежее
	lc.SetForeground(false)
	lc.SetForeground(true)
	lc.SetForeground(false)

	var last bool
	for len(events) > 0 {
		last = <-events
	}
	assert.False(t, last)
}
