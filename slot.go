// Package atomicslot provides a single-slot, lock-free container that
// transfers exclusive ownership of a heap-allocated value between
// goroutines using one atomic word. No mutexes, no blocking, no
// allocation beyond the value itself.
package atomicslot

import "sync/atomic"

// Slot holds at most one *T behind a single atomic word.
// nil is the empty sentinel; the allocator never hands out nil, so the
// two states cannot collide.
//
// Ownership discipline: a *T passed to Swap, Store or New must not be
// used by the caller afterwards; a non-nil *T returned by Swap or Take
// belongs exclusively to the caller. At any instant a value is reachable
// through the slot or held by exactly one goroutine, never both.
//
// The zero Slot is an empty slot ready for use.
type Slot[T any] struct {
	ptr atomic.Pointer[T]
}

// New creates a slot pre-loaded with v.
// A nil v gives an empty slot.
func New[T any](v *T) *Slot[T] {
	s := &Slot[T]{}
	s.ptr.Store(v)
	return s
}

// NewEmpty creates an empty slot.
func NewEmpty[T any]() *Slot[T] {
	return &Slot[T]{}
}

// Swap replaces the content with v and returns the previous content,
// or nil if the slot was empty. A single unconditional exchange: it
// completes in one atomic step regardless of concurrent activity, and
// the returned value is observed from the exact word exchanged, never
// from a separate load. A nil v empties the slot.
// May be called concurrently from many goroutines.
func (s *Slot[T]) Swap(v *T) *T {
	return s.ptr.Swap(v)
}

// Take empties the slot and returns the previous content with
// ownership transferred to the caller. Returns nil if the slot was
// already empty; that is the normal empty case, not an error.
// May be called concurrently from many goroutines.
func (s *Slot[T]) Take() *T {
	return s.Swap(nil)
}

// Store replaces the content with v and discards the previous value.
// The displaced value becomes unreachable through the slot and is
// reclaimed by the collector; no caller receives ownership of it.
// May be called concurrently from many goroutines.
func (s *Slot[T]) Store(v *T) {
	s.ptr.Store(v)
}

// IsNone reports whether the slot is empty. The answer is a snapshot
// and may be stale as soon as it returns; never treat it as a
// precondition for a following operation, re-check via that
// operation's own return value.
func (s *Slot[T]) IsNone() bool {
	return s.ptr.Load() == nil
}

// IsSome reports whether the slot holds a value.
// Same snapshot caveat as IsNone.
func (s *Slot[T]) IsSome() bool {
	return !s.IsNone()
}
