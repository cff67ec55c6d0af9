// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package typestate encodes the protocol of a file-like handle in its type.
//
// A [Handle] is parameterized by a zero-sized state marker. Each transition
// is a function from one instantiation to the next, so a program that reads
// a handle before opening it is rejected by the compiler rather than failing
// at run time:
//
//	h := typestate.New()       // Handle[Closed]
//	o := typestate.Open(h)     // Handle[Opened]
//	r := typestate.Read(o)     // Handle[Readable]
//	n := typestate.Data(&r)    // 42
//	h = typestate.Close(r)     // Handle[Closed] again
//
//	typestate.Read(h)          // compile error: Handle[Closed] is not Handle[Opened]
//
// # Protocol
//
//	Closed --open--> Opened --read--> Readable --close--> Closed
//
// get_data ([Data]) is valid only on a readable handle and does not change
// the state. There are no other transitions.
//
// # Zero Cost
//
// The marker types hold no data and the phantom field has zero length, so a
// Handle is exactly its payload: it has the size of an int and moves through
// the protocol without allocating. Transition functions are marked
// //go:noinline so that their compiled bodies stay visible and can be
// compared against the two runtime baselines:
//
//   - [Checked]: the same protocol with a runtime state discriminant; illegal
//     transitions return a [*TransitionError] wrapping a distinct sentinel
//   - [Plain]: no state at all; illegal transitions silently succeed
//
// [Run] drives any of the three through the protocol, selected by [Variant].
//
// # Move Semantics
//
// Every transition takes its input by value and returns a new handle. The
// input is spent, but Go cannot stop a caller from using it again. [Owned]
// makes reuse detectable: [Owned.Take] moves the handle out exactly once and
// panics on the second attempt, [Owned.TryTake] returns [ErrConsumed].
//
// # Errors
//
// [Next] is the runtime statement of the protocol. It returns the successor
// state, or one of:
//
//   - [ErrAlreadyOpen]: open on an open or readable handle
//   - [ErrReadBeforeOpen]: read on a closed handle
//   - [ErrAlreadyRead]: read on a readable handle
//   - [ErrDataBeforeRead]: get_data on a closed or open handle
//   - [ErrAlreadyClosed]: close on a closed handle
//   - [ErrCloseBeforeRead]: close on an open handle
//
// [Bracket] runs open, read and close around a callback, closing even when
// the callback fails.
package typestate
