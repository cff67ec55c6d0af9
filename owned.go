// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typestate

import (
	"sync/atomic"
)

// Owned boxes a [Handle] with move-once enforcement.
// The handle can be taken out at most once; subsequent attempts
// panic (Take, Borrow) or return [ErrConsumed] (TryTake).
//
// Transitions on [Handle] consume their argument by convention only.
// Owned turns reuse of a spent handle into a detectable failure:
//
//	o := typestate.Own(typestate.New())
//	r := typestate.Own(typestate.Read(typestate.Open(o.Take())))
//	_ = typestate.Data(r.Borrow())
//	o.Take() // panics: o was already moved
type Owned[S State] struct {
	used atomic.Uintptr
	h    Handle[S]
}

// Own takes ownership of h. The caller must not use h afterwards.
func Own[S State](h Handle[S]) *Owned[S] {
	return &Owned[S]{h: h}
}

// Take moves the handle out.
// Panics if the handle has already been moved or discarded.
func (o *Owned[S]) Take() Handle[S] {
	if o.used.Add(1) != 1 {
		panic("typestate: handle used after move")
	}
	return o.h
}

// TryTake attempts to move the handle out.
// Returns [ErrConsumed] if the handle has already been moved.
func (o *Owned[S]) TryTake() (Handle[S], error) {
	if o.used.Add(1) != 1 {
		var zero Handle[S]
		return zero, ErrConsumed
	}
	return o.h, nil
}

// Borrow returns a pointer to the handle without moving it.
// The pointer must not outlive the next Take.
// Panics if the handle has already been moved or discarded.
func (o *Owned[S]) Borrow() *Handle[S] {
	if o.used.Load() != 0 {
		panic("typestate: handle borrowed after move")
	}
	return &o.h
}

// Consumed reports whether the handle has been moved or discarded.
func (o *Owned[S]) Consumed() bool {
	return o.used.Load() != 0
}

// Discard marks the handle as moved without returning it.
func (o *Owned[S]) Discard() {
	o.used.Store(1)
}
