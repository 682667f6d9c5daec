package toc

import (
	"slices"
	"sync"

	"github.com/nikitaapatil/howtobangalore/internal/domain"
)

// DefaultThreshold is the distance from the viewport top, in pixels, a
// heading has to pass to become active.
const DefaultThreshold = 100.0

type State int

const (
	Idle State = iota
	Extracting
	Ready
)

func (s State) String() string {
	switch s {
	case Extracting:
		return "extracting"
	case Ready:
		return "ready"
	default:
		return "idle"
	}
}

type TrackerOption func(*Tracker)

func WithThreshold(px float64) TrackerOption {
	return func(t *Tracker) {
		t.threshold = px
	}
}

// Tracker is the table of contents of one mounted article view.
type Tracker struct {
	mu        sync.RWMutex
	state     State
	headings  []domain.Heading
	active    int
	threshold float64
	unmount   func()
}

func NewTracker(opts ...TrackerOption) *Tracker {
	t := &Tracker{active: -1, threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Load extracts the headings of body and moves the tracker to Ready.
func (t *Tracker) Load(body string) []domain.Heading {
	t.mu.Lock()
	t.state = Extracting
	t.headings = nil
	t.active = -1
	t.mu.Unlock()

	headings := Extract(body)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.headings = headings
	t.state = Ready
	return slices.Clone(headings)
}

// Mount subscribes the tracker to bus and returns the func that unsubscribes
// it. Mounting again replaces the previous subscription.
func (t *Tracker) Mount(bus *ScrollBus) func() {
	unsubscribe := bus.Subscribe(t.OnScroll)

	t.mu.Lock()
	prev := t.unmount
	t.unmount = unsubscribe
	t.mu.Unlock()

	if prev != nil {
		prev()
	}
	return t.Unmount
}

func (t *Tracker) Unmount() {
	t.mu.Lock()
	unsubscribe := t.unmount
	t.unmount = nil
	t.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// OnScroll updates the active heading. Events before Ready are ignored.
func (t *Tracker) OnScroll(ev ScrollEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != Ready {
		return
	}
	n := min(len(ev.Tops), len(t.headings))
	t.active = ActiveIndex(ev.Tops[:n], t.threshold)
}

func (t *Tracker) State() State {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

func (t *Tracker) Headings() []domain.Heading {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.headings)
}

// ActiveID returns the id of the active heading, or "" before the first
// heading passes the threshold.
func (t *Tracker) ActiveID() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.active < 0 || t.active >= len(t.headings) {
		return ""
	}
	return t.headings[t.active].ID
}

func (t *Tracker) Progress() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return Progress(t.active, len(t.headings))
}

// ActiveIndex returns the last index whose top is at or above threshold,
// or -1 when none is.
func ActiveIndex(tops []float64, threshold float64) int {
	active := -1
	for i, top := range tops {
		if top <= threshold {
			active = i
		}
	}
	return active
}

// Progress is (active+1)/total clamped to [0, 1]; 0 without an active
// heading.
func Progress(active, total int) float64 {
	if total <= 0 || active < 0 {
		return 0
	}
	p := float64(active+1) / float64(total)
	return min(max(p, 0), 1)
}
