// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typestate

// Protocol states.
// Closed, Opened and Readable are zero-sized markers that select a
// [Handle] instantiation. They carry no data and exist only at compile time;
// [Kind] is their runtime name.

// Kind names a protocol state at run time.
type Kind uint8

const (
	KindClosed Kind = iota
	KindOpen
	KindReadable
)

// String returns the lower-case state name.
func (k Kind) String() string {
	switch k {
	case KindClosed:
		return "closed"
	case KindOpen:
		return "open"
	case KindReadable:
		return "readable"
	}
	return "invalid"
}

// Closed is the state of a freshly created or closed handle.
type Closed struct{}

// Opened is the state of an opened handle that has not been read yet.
type Opened struct{}

// Readable is the state of a handle whose payload holds the read result.
type Readable struct{}

func (Closed) Kind() Kind   { return KindClosed }
func (Opened) Kind() Kind   { return KindOpen }
func (Readable) Kind() Kind { return KindReadable }

// State is the sealed set of protocol states.
// The type union admits exactly [Closed], [Opened] and [Readable];
// Handle[T] does not compile for any other T.
type State interface {
	Closed | Opened | Readable
	Kind() Kind
}
