// internal/vec/vec.go
//
// Owned, resizable sequence with explicit access views.
// Responsibilities:
//   - Direct (At) and safe (Get) element lookup.
//   - Shared read-only views (Ref), any number at a time.
//   - One exclusive mutable view (MutRef), only while no Ref is live.
//
// Rules (checked at runtime):
//   • Borrow fails while a MutRef is live.
//   • BorrowMut and Push fail while any view is live.
//   • A released view must not be used again; doing so panics.
//
// Vec is not safe for concurrent use.

package vec

import (
	"errors"
	"fmt"
	"iter"
)

var (
	ErrOutOfRange = errors.New("index out of range")
	ErrBorrowed   = errors.New("sequence already borrowed")
	ErrReleased   = errors.New("view already released")
)

// Vec is an owned sequence of T.
type Vec[T any] struct {
	items  []T
	shared int  // live Ref count
	excl   bool // a MutRef is live
}

// From returns a Vec holding a copy of items.
func From[T any](items ...T) *Vec[T] {
	return &Vec[T]{items: append([]T(nil), items...)}
}

// Len reports the number of elements.
func (v *Vec[T]) Len() int { return len(v.items) }

// Borrows reports how many shared views are live.
func (v *Vec[T]) Borrows() int { return v.shared }

// At returns element i and panics if i is out of range.
func (v *Vec[T]) At(i int) T {
	if i < 0 || i >= len(v.items) {
		panic(fmt.Errorf("%w: index %d, len %d", ErrOutOfRange, i, len(v.items)))
	}
	return v.items[i]
}

// Get returns element i, or false when i is out of range.
func (v *Vec[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(v.items) {
		var zero T
		return zero, false
	}
	return v.items[i], true
}

// Push appends x. It fails while any view is live, since growing may
// move the backing array out from under it.
func (v *Vec[T]) Push(x T) error {
	if v.shared > 0 || v.excl {
		return fmt.Errorf("push: %w", ErrBorrowed)
	}
	v.items = append(v.items, x)
	return nil
}

// Borrow opens a shared read-only view.
func (v *Vec[T]) Borrow() (*Ref[T], error) {
	if v.excl {
		return nil, fmt.Errorf("borrow: %w (exclusive)", ErrBorrowed)
	}
	v.shared++
	return &Ref[T]{v: v}, nil
}

// BorrowMut opens the exclusive mutable view.
func (v *Vec[T]) BorrowMut() (*MutRef[T], error) {
	switch {
	case v.excl:
		return nil, fmt.Errorf("borrow mut: %w (exclusive)", ErrBorrowed)
	case v.shared > 0:
		return nil, fmt.Errorf("borrow mut: %w (%d shared)", ErrBorrowed, v.shared)
	}
	v.excl = true
	return &MutRef[T]{v: v}, nil
}

// Ref is a shared read-only view of a Vec.
type Ref[T any] struct {
	v *Vec[T] // nil once released
}

func (r *Ref[T]) live() *Vec[T] {
	if r.v == nil {
		panic(ErrReleased)
	}
	return r.v
}

// Len reports the number of elements.
func (r *Ref[T]) Len() int { return r.live().Len() }

// Get is Vec.Get through the view.
func (r *Ref[T]) Get(i int) (T, bool) { return r.live().Get(i) }

// All yields each element in order. Each call starts a new pass.
func (r *Ref[T]) All() iter.Seq[T] {
	v := r.live()
	return func(yield func(T) bool) {
		for _, x := range v.items {
			if !yield(x) {
				return
			}
		}
	}
}

// Release ends the view. Releasing twice is a no-op.
func (r *Ref[T]) Release() {
	if r.v == nil {
		return
	}
	r.v.shared--
	r.v = nil
}

// MutRef is the exclusive mutable view of a Vec.
type MutRef[T any] struct {
	v *Vec[T] // nil once released
}

func (m *MutRef[T]) live() *Vec[T] {
	if m.v == nil {
		panic(ErrReleased)
	}
	return m.v
}

// All yields a pointer to each element in order for in-place updates.
// The pointers are only valid until Release.
func (m *MutRef[T]) All() iter.Seq[*T] {
	v := m.live()
	return func(yield func(*T) bool) {
		for i := range v.items {
			if !yield(&v.items[i]) {
				return
			}
		}
	}
}

// Release ends the view. Releasing twice is a no-op.
func (m *MutRef[T]) Release() {
	if m.v == nil {
		return
	}
	m.v.excl = false
	m.v = nil
}
