package store

import "sync"

// Change announces that the value under Key was rewritten or removed.
type Change struct {
	Key string
}

// Notifier fans collection-change events out to subscribers, the in-process
// counterpart of browser storage events. Publishing never blocks: a
// subscriber that falls behind loses events rather than stalling a write.
type Notifier struct {
	mu   sync.RWMutex
	subs map[int]chan Change
	next int
}

// NewNotifier returns an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]chan Change)}
}

// Subscribe registers a listener. The returned cancel func must be called to
// release the subscription; the channel is closed on cancel.
func (n *Notifier) Subscribe(buffer int) (<-chan Change, func()) {
	if buffer <= 0 {
		buffer = 8
	}

	n.mu.Lock()
	id := n.next
	n.next++
	ch := make(chan Change, buffer)
	n.subs[id] = ch
	n.mu.Unlock()

	cancel := func() {
		n.mu.Lock()
		if sub, ok := n.subs[id]; ok {
			delete(n.subs, id)
			close(sub)
		}
		n.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers the change to every subscriber with room in its buffer.
func (n *Notifier) Publish(key string) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	for _, ch := range n.subs {
		select {
		case ch <- Change{Key: key}:
		default:
		}
	}
}
