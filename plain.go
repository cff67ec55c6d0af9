// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typestate

// Plain is a handle without any state tracking. Nothing stops a caller from
// reading before opening; it is the cost floor [Handle] is measured against.
type Plain struct {
	data int
}

// NewPlain returns a handle with a zero payload.
//
//go:noinline
func NewPlain() *Plain {
	return &Plain{}
}

// Open does nothing.
//
//go:noinline
func (h *Plain) Open() {}

// Read stores [ReadPayload].
//
//go:noinline
func (h *Plain) Read() {
	h.data = ReadPayload
}

// Data returns the payload.
//
//go:noinline
func (h *Plain) Data() int {
	return h.data
}

// Close clears the payload.
//
//go:noinline
func (h *Plain) Close() {
	h.data = 0
}
