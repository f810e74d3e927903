package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignalHub_PublishToAllSubscribers(t *testing.T) {
	hub := newSignalHub[int]()

	a, cancelA := hub.subscribe(nil)
	defer cancelA()
	b, cancelB := hub.subscribe(nil)
	defer cancelB()

	hub.publish(42)

	assert.Equal(t, 42, <-a)
	assert.Equal(t, 42, <-b)
}

func TestSignalHub_FilterSkipsValues(t *testing.T) {
	hub := newSignalHub[int]()

	even, cancel := hub.subscribe(func(v int) bool { return v%2 == 0 })
	defer cancel()

	hub.publish(1)
	hub.publish(2)

	assert.Equal(t, 2, <-even)
	assert.Empty(t, even, "нечётное значение не должно пройти фильтр")
}

func TestSignalHub_PublishNeverBlocks(t *testing.T) {
	hub := newSignalHub[int]()

	slow, cancel := hub.subscribe(nil)
	defer cancel()

	// переполняем буфер: publish не должен блокироваться, старые значения
	// вытесняются в пользу свежих
	for i := 0; i < signalBuffer*3; i++ {
		hub.publish(i)
	}

	var last int
	for len(slow) > 0 {
		last = <-slow
	}
	assert.Equal(t, signalBuffer*3-1, last, "самое свежее значение должно дойти")
}

func TestSignalHub_CancelClosesChannel(t *testing.T) {
	hub := newSignalHub[int]()

	ch, cancel := hub.subscribe(nil)
	cancel()

	_, open := <-ch
	require.False(t, open)

	// publish после отмены не паникует
	hub.publish(1)

	// повторная отмена — no-op
	cancel()
}
