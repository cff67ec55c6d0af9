// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typestate

// ReadPayload is the value a simulated read stores in the handle.
const ReadPayload = 42

// Handle is a file-like handle whose protocol state is the type parameter S.
//
// The zero-length [0]S field gives every instantiation a distinct underlying
// type, so Handle[Opened] cannot be converted to Handle[Closed] or any other
// state. It comes first because a trailing zero-size field would be padded.
// At run time a Handle is exactly its payload.
//
// Transitions take the handle by value and return a new one. The argument is
// spent: keep only the result. Go cannot forbid reuse of the old value; wrap
// the handle in [Owned] when reuse must be caught.
type Handle[S State] struct {
	_    [0]S
	data int
}

// State reports the handle's state at run time.
func (h Handle[S]) State() Kind {
	var s S
	return s.Kind()
}

// New returns a closed handle with a zero payload.
//
//go:noinline
func New() Handle[Closed] {
	return Handle[Closed]{}
}

// Open moves a closed handle to the open state. The payload is kept.
//
//go:noinline
func Open(h Handle[Closed]) Handle[Opened] {
	return Handle[Opened]{data: h.data}
}

// Read moves an open handle to the readable state and stores [ReadPayload].
//
//go:noinline
func Read(h Handle[Opened]) Handle[Readable] {
	return Handle[Readable]{data: ReadPayload}
}

// Data returns the payload of a readable handle without consuming it.
//
//go:noinline
func Data(h *Handle[Readable]) int {
	return h.data
}

// Close moves a readable handle back to the closed state and clears the payload.
//
//go:noinline
func Close(h Handle[Readable]) Handle[Closed] {
	return Handle[Closed]{}
}

// UseFile runs the whole protocol once and returns the data that was read.
//
//go:noinline
func UseFile() int {
	f := New()
	o := Open(f)
	r := Read(o)
	data := Data(&r)
	_ = Close(r)
	return data
}
