// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typestate

// Bracket runs the protocol around use: open → read → use → close.
// Close always runs, whether use returns an error or not.
//
// Returns the result and error of use together with the closed handle,
// which may be opened again.
func Bracket[A any](h Handle[Closed], use func(*Handle[Readable]) (A, error)) (A, Handle[Closed], error) {
	r := Read(Open(h))
	a, err := use(&r)
	return a, Close(r), err
}
