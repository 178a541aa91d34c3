package store

import (
	"sync"
	"sync/atomic"

	"github.com/sandeepkv93/snaplist/internal/model"
)

// Snapshot is the whole collection after one successful mutation.
type Snapshot struct {
	Version uint64
	Tasks   []model.Task
}

type Subscription struct {
	id      int
	ch      chan Snapshot
	hub     *hub
	once    sync.Once
	dropped uint64
}

// C delivers snapshots. It is closed by Close.
func (s *Subscription) C() <-chan Snapshot {
	return s.ch
}

// Dropped counts snapshots evicted because the buffer was full. The oldest
// buffered snapshot is evicted, so the newest is always delivered.
func (s *Subscription) Dropped() uint64 {
	return atomic.LoadUint64(&s.dropped)
}

func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.remove(s.id)
		close(s.ch)
	})
}

// Subscribe registers a snapshot listener with the given channel buffer.
func (s *Store) Subscribe(buffer int) *Subscription {
	return s.hub.add(buffer)
}

type hub struct {
	mu      sync.Mutex
	nextID  int
	version uint64
	subs    map[int]*Subscription
}

func newHub() *hub {
	return &hub{subs: make(map[int]*Subscription)}
}

func (h *hub) add(buffer int) *Subscription {
	if buffer <= 0 {
		buffer = 1
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	sub := &Subscription{id: h.nextID, ch: make(chan Snapshot, buffer), hub: h}
	h.subs[sub.id] = sub
	return sub
}

func (h *hub) remove(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs, id)
}

func (h *hub) broadcast(tasks []model.Task) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.version++
	for _, sub := range h.subs {
		snap := Snapshot{Version: h.version, Tasks: append([]model.Task(nil), tasks...)}
		sub.offer(snap)
	}
}

// offer sends snap without blocking, evicting the oldest buffered snapshot
// when the buffer is full. Callers hold hub.mu, so no other sender competes
// for the freed slot.
func (s *Subscription) offer(snap Snapshot) {
	select {
	case s.ch <- snap:
		return
	default:
	}
	select {
	case <-s.ch:
		atomic.AddUint64(&s.dropped, 1)
	default:
	}
	select {
	case s.ch <- snap:
	default:
		atomic.AddUint64(&s.dropped, 1)
	}
}
