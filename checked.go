// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typestate

// Checked is a handle that carries its state as a runtime discriminant.
// Every method validates the state with [Next] before acting and leaves the
// handle untouched on error. It is the runtime-checked counterpart of
// [Handle] and obeys the same protocol and payload rules.
type Checked struct {
	state Kind
	data  int
}

// NewChecked returns a closed handle with a zero payload.
//
//go:noinline
func NewChecked() *Checked {
	return &Checked{state: KindClosed}
}

// State returns the current state.
func (h *Checked) State() Kind { return h.state }

// Open moves the handle from closed to open.
//
//go:noinline
func (h *Checked) Open() error {
	next, err := Next(OpOpen, h.state)
	if err != nil {
		return err
	}
	h.state = next
	return nil
}

// Read moves the handle from open to readable and stores [ReadPayload].
//
//go:noinline
func (h *Checked) Read() error {
	next, err := Next(OpRead, h.state)
	if err != nil {
		return err
	}
	h.state = next
	h.data = ReadPayload
	return nil
}

// Data returns the payload of a readable handle.
//
//go:noinline
func (h *Checked) Data() (int, error) {
	if _, err := Next(OpData, h.state); err != nil {
		return 0, err
	}
	return h.data, nil
}

// Close moves the handle from readable to closed and clears the payload.
//
//go:noinline
func (h *Checked) Close() error {
	next, err := Next(OpClose, h.state)
	if err != nil {
		return err
	}
	h.state = next
	h.data = 0
	return nil
}
