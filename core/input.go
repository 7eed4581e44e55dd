package core

// KeySource reports the current state of a key. *Window satisfies this, and
// tests substitute their own implementation.
type KeySource interface {
	IsKeyPressed(key int) bool
}

// KeyPressWatcher fires a callback on the frame a key transitions from
// released to held. Holding the key does not re-fire.
type KeyPressWatcher struct {
	key     int
	onPress func()
	wasDown bool
}

func NewKeyPressWatcher(key int, onPress func()) *KeyPressWatcher {
	return &KeyPressWatcher{key: key, onPress: onPress}
}

func (w *KeyPressWatcher) Poll(input KeySource) {
	down := input.IsKeyPressed(w.key)
	if down && !w.wasDown {
		w.onPress()
	}
	w.wasDown = down
}

// WatcherSet polls a group of watchers in registration order.
type WatcherSet struct {
	watchers []*KeyPressWatcher
}

func (s *WatcherSet) Watch(key int, onPress func()) {
	s.watchers = append(s.watchers, NewKeyPressWatcher(key, onPress))
}

func (s *WatcherSet) Poll(input KeySource) {
	for _, w := range s.watchers {
		w.Poll(input)
	}
}
