package store

import (
	"github.com/lmeert/tick/internal/model"
)

// In-memory item storage. Single owner, single goroutine; the UI event loop
// serializes every update, so no locking for v1.

type subscriber struct {
	id int
	fn func(model.Item)
}

// Store holds the ordered item list and the next identifier to hand out.
// Identifiers start at 1 and only ever grow; items are never removed.
type Store struct {
	items   []model.Item
	nextID  uint64
	version uint64

	subs    []subscriber
	nextSub int
}

// New returns an empty store.
func New() *Store {
	return &Store{nextID: 1}
}

// Append creates an item with the next identifier, stores it at the end of
// the list and returns a copy. The label is taken as-is; callers that want to
// reject blank input trim before calling.
func (s *Store) Append(label string) model.Item {
	it := model.Item{
		ID:    s.nextID,
		Label: label,
	}
	s.nextID++
	s.items = append(s.items, it)
	s.version++
	for _, sub := range s.subs {
		sub.fn(it)
	}
	return it
}

// Items returns a copy of the list in insertion order.
func (s *Store) Items() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Len reports the number of stored items.
func (s *Store) Len() int { return len(s.items) }

// Version is a counter bumped once per append. Views that poll instead of
// subscribing can compare it against the last value they rendered.
func (s *Store) Version() uint64 { return s.version }

// Subscribe registers fn to run after every append, receiving a copy of the
// new item. Subscribers fire in subscription order. The returned cancel
// removes the subscription.
func (s *Store) Subscribe(fn func(model.Item)) (cancel func()) {
	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}
