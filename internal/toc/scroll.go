package toc

import "sync"

// ScrollEvent carries the current top offset, relative to the viewport, of
// each heading element in document order.
type ScrollEvent struct {
	Tops []float64
}

type Listener func(ScrollEvent)

// ScrollBus is the window-level scroll subscription shared by every mounted
// tracker of a page.
type ScrollBus struct {
	mu        sync.Mutex
	nextID    uint64
	listeners map[uint64]Listener
}

func NewScrollBus() *ScrollBus {
	return &ScrollBus{listeners: make(map[uint64]Listener)}
}

// Subscribe registers l and returns the func that removes it. Calling the
// returned func more than once is a no-op.
func (b *ScrollBus) Subscribe(l Listener) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.listeners[id] = l
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.listeners, id)
			b.mu.Unlock()
		})
	}
}

// Publish delivers ev to every listener registered at call time.
func (b *ScrollBus) Publish(ev ScrollEvent) {
	b.mu.Lock()
	listeners := make([]Listener, 0, len(b.listeners))
	for _, l := range b.listeners {
		listeners = append(listeners, l)
	}
	b.mu.Unlock()

	for _, l := range listeners {
		l(ev)
	}
}

// Listeners returns the number of registered listeners.
func (b *ScrollBus) Listeners() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}
