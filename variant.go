// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typestate

import (
	"errors"
	"strconv"
	"strings"
)

// Variant selects a handle implementation.
type Variant string

const (
	// VariantTypestate uses [Handle]: states are checked by the compiler.
	VariantTypestate Variant = "typestate"
	// VariantChecked uses [Checked]: states are checked at run time.
	VariantChecked Variant = "checked"
	// VariantUnchecked uses [Plain]: states are not checked.
	VariantUnchecked Variant = "unchecked"
)

// ErrUnknownVariant is returned by [ParseVariant] for an unrecognized name.
var ErrUnknownVariant = errors.New("unknown variant")

// Variants returns every variant in a stable order.
func Variants() []Variant {
	return []Variant{VariantTypestate, VariantChecked, VariantUnchecked}
}

// ParseVariant returns the variant named s. Matching ignores case.
func ParseVariant(s string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Variants() {
		if v == known {
			return v, nil
		}
	}
	return "", &VariantError{Name: s}
}

// VariantError reports an unrecognized variant name.
type VariantError struct {
	Name string
}

func (e *VariantError) Error() string {
	return "typestate: " + ErrUnknownVariant.Error() + " " + strconv.Quote(e.Name)
}

func (e *VariantError) Unwrap() error { return ErrUnknownVariant }

// Observer is notified after each protocol step with the operation,
// the state reached and the payload at that point.
type Observer func(op Op, to Kind, data int)

// Run executes open → read → get_data → close with the implementation
// selected by v and returns the data that was read. obs may be nil.
func Run(v Variant, obs Observer) (int, error) {
	if obs == nil {
		obs = func(Op, Kind, int) {}
	}
	switch v {
	case VariantTypestate:
		return runTypestate(obs), nil
	case VariantChecked:
		return runChecked(obs)
	case VariantUnchecked:
		return runUnchecked(obs), nil
	}
	return 0, &VariantError{Name: string(v)}
}

func runTypestate(obs Observer) int {
	c := New()
	o := Open(c)
	obs(OpOpen, o.State(), o.data)
	r := Read(o)
	obs(OpRead, r.State(), r.data)
	data := Data(&r)
	obs(OpData, r.State(), data)
	c = Close(r)
	obs(OpClose, c.State(), c.data)
	return data
}

func runChecked(obs Observer) (int, error) {
	h := NewChecked()
	if err := h.Open(); err != nil {
		return 0, err
	}
	obs(OpOpen, h.state, h.data)
	if err := h.Read(); err != nil {
		return 0, err
	}
	obs(OpRead, h.state, h.data)
	data, err := h.Data()
	if err != nil {
		return 0, err
	}
	obs(OpData, h.state, data)
	if err := h.Close(); err != nil {
		return 0, err
	}
	obs(OpClose, h.state, h.data)
	return data, nil
}

// runUnchecked reports the states the protocol would be in; Plain itself
// does not know them.
func runUnchecked(obs Observer) int {
	h := NewPlain()
	h.Open()
	obs(OpOpen, KindOpen, h.data)
	h.Read()
	obs(OpRead, KindReadable, h.data)
	data := h.Data()
	obs(OpData, KindReadable, data)
	h.Close()
	obs(OpClose, KindClosed, h.data)
	return data
}
