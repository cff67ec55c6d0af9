// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typestate_test

import (
	"testing"
	"unsafe"

	"code.hybscloud.com/typestate"
)

func TestUseFile(t *testing.T) {
	if got := typestate.UseFile(); got != 42 {
		t.Fatalf("UseFile() = %d, want 42", got)
	}
}

func TestHandleNewIsClosed(t *testing.T) {
	h := typestate.New()
	if got := h.State(); got != typestate.KindClosed {
		t.Fatalf("New().State() = %v, want closed", got)
	}
}

func TestHandleReadThenData(t *testing.T) {
	r := typestate.Read(typestate.Open(typestate.New()))
	if got := r.State(); got != typestate.KindReadable {
		t.Fatalf("state = %v, want readable", got)
	}
	if got := typestate.Data(&r); got != typestate.ReadPayload {
		t.Fatalf("Data() = %d, want %d", got, typestate.ReadPayload)
	}
	// Data does not consume: a second call sees the same payload.
	if got := typestate.Data(&r); got != 42 {
		t.Fatalf("second Data() = %d, want 42", got)
	}
}

func TestHandleOpenState(t *testing.T) {
	o := typestate.Open(typestate.New())
	if got := o.State(); got != typestate.KindOpen {
		t.Fatalf("state = %v, want open", got)
	}
}

func TestHandleCloseResets(t *testing.T) {
	c := typestate.Close(typestate.Read(typestate.Open(typestate.New())))
	if got := c.State(); got != typestate.KindClosed {
		t.Fatalf("state = %v, want closed", got)
	}
	if c != typestate.New() {
		t.Fatalf("closed handle %+v differs from a new one", c)
	}
}

func TestHandleReopen(t *testing.T) {
	c := typestate.New()
	for i := range 3 {
		r := typestate.Read(typestate.Open(c))
		if got := typestate.Data(&r); got != 42 {
			t.Fatalf("cycle %d: Data() = %d, want 42", i, got)
		}
		c = typestate.Close(r)
	}
	if c != typestate.New() {
		t.Fatalf("handle after three cycles %+v differs from a new one", c)
	}
}

func TestHandleSizeMatchesPlain(t *testing.T) {
	want := unsafe.Sizeof(int(0))
	if got := unsafe.Sizeof(typestate.Handle[typestate.Closed]{}); got != want {
		t.Errorf("Sizeof(Handle[Closed]) = %d, want %d", got, want)
	}
	if got := unsafe.Sizeof(typestate.Handle[typestate.Opened]{}); got != want {
		t.Errorf("Sizeof(Handle[Opened]) = %d, want %d", got, want)
	}
	if got := unsafe.Sizeof(typestate.Handle[typestate.Readable]{}); got != want {
		t.Errorf("Sizeof(Handle[Readable]) = %d, want %d", got, want)
	}
	if got := unsafe.Sizeof(typestate.Plain{}); got != want {
		t.Errorf("Sizeof(Plain) = %d, want %d", got, want)
	}
}
