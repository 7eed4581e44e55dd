package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeKeys map[int]bool

func (f fakeKeys) IsKeyPressed(key int) bool { return f[key] }

func TestKeyPressWatcherEdgeTriggered(t *testing.T) {
	keys := fakeKeys{}
	fired := 0
	watcher := NewKeyPressWatcher(KeyT, func() { fired++ })

	// Released, no fire
	watcher.Poll(keys)
	assert.Equal(t, 0, fired)

	// Press edge fires once
	keys[KeyT] = true
	watcher.Poll(keys)
	assert.Equal(t, 1, fired)

	// Holding does not re-fire
	watcher.Poll(keys)
	watcher.Poll(keys)
	assert.Equal(t, 1, fired)

	// Release then press fires again
	keys[KeyT] = false
	watcher.Poll(keys)
	keys[KeyT] = true
	watcher.Poll(keys)
	assert.Equal(t, 2, fired)
}

func TestWatcherSetPollsInRegistrationOrder(t *testing.T) {
	keys := fakeKeys{KeyT: true, KeyY: true}

	var order []int
	var set WatcherSet
	set.Watch(KeyY, func() { order = append(order, KeyY) })
	set.Watch(KeyT, func() { order = append(order, KeyT) })

	set.Poll(keys)

	assert.Equal(t, []int{KeyY, KeyT}, order)
}
