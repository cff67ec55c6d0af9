// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typestate_test

import (
	"testing"

	"code.hybscloud.com/typestate"
)

var sink int

// BenchmarkTypestate measures the compile-time checked protocol.
func BenchmarkTypestate(b *testing.B) {
	for b.Loop() {
		h := typestate.New()
		r := typestate.Read(typestate.Open(h))
		sink = typestate.Data(&r)
		_ = typestate.Close(r)
	}
}

// BenchmarkUseFile measures the protocol behind a single call.
func BenchmarkUseFile(b *testing.B) {
	for b.Loop() {
		sink = typestate.UseFile()
	}
}

// BenchmarkChecked measures the runtime checked protocol.
func BenchmarkChecked(b *testing.B) {
	for b.Loop() {
		h := typestate.NewChecked()
		_ = h.Open()
		_ = h.Read()
		sink, _ = h.Data()
		_ = h.Close()
	}
}

// BenchmarkUnchecked measures the protocol with no state tracking.
func BenchmarkUnchecked(b *testing.B) {
	for b.Loop() {
		h := typestate.NewPlain()
		h.Open()
		h.Read()
		sink = h.Data()
		h.Close()
	}
}

// BenchmarkOwned measures the protocol with move enforcement.
func BenchmarkOwned(b *testing.B) {
	for b.Loop() {
		c := typestate.Own(typestate.New())
		r := typestate.Own(typestate.Read(typestate.Open(c.Take())))
		sink = typestate.Data(r.Borrow())
		_ = typestate.Close(r.Take())
	}
}
