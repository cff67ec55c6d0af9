// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typestate

import "errors"

// Op is a protocol operation.
type Op uint8

const (
	OpOpen Op = iota
	OpRead
	OpData
	OpClose
)

// String returns the operation name.
func (o Op) String() string {
	switch o {
	case OpOpen:
		return "open"
	case OpRead:
		return "read"
	case OpData:
		return "get_data"
	case OpClose:
		return "close"
	}
	return "invalid"
}

// Sentinel errors, one per violated precondition.
var (
	ErrAlreadyOpen     = errors.New("open on an open handle")
	ErrReadBeforeOpen  = errors.New("read before open")
	ErrAlreadyRead     = errors.New("read on a readable handle")
	ErrDataBeforeRead  = errors.New("get_data before read")
	ErrAlreadyClosed   = errors.New("close on a closed handle")
	ErrCloseBeforeRead = errors.New("close before read")
	ErrConsumed        = errors.New("handle used after move")
	ErrInvalidOp       = errors.New("invalid operation")
)

// TransitionError reports an operation attempted in the wrong state.
// Err is one of the sentinel errors above and is matched by [errors.Is].
type TransitionError struct {
	Op   Op
	From Kind
	Err  error
}

func (e *TransitionError) Error() string {
	return "typestate: " + e.Err.Error() + " (" + e.Op.String() + " on " + e.From.String() + " handle)"
}

func (e *TransitionError) Unwrap() error { return e.Err }

// Next returns the state reached by applying op to a handle in state from.
// It is the runtime statement of the protocol that [Handle] enforces at
// compile time:
//
//	open     closed   -> open
//	read     open     -> readable
//	get_data readable -> readable
//	close    readable -> closed
//
// Any other pair returns a [*TransitionError] and from unchanged.
func Next(op Op, from Kind) (Kind, error) {
	var err error
	switch op {
	case OpOpen:
		if from == KindClosed {
			return KindOpen, nil
		}
		err = ErrAlreadyOpen
	case OpRead:
		switch from {
		case KindOpen:
			return KindReadable, nil
		case KindClosed:
			err = ErrReadBeforeOpen
		default:
			err = ErrAlreadyRead
		}
	case OpData:
		if from == KindReadable {
			return KindReadable, nil
		}
		err = ErrDataBeforeRead
	case OpClose:
		switch from {
		case KindReadable:
			return KindClosed, nil
		case KindOpen:
			err = ErrCloseBeforeRead
		default:
			err = ErrAlreadyClosed
		}
	default:
		err = ErrInvalidOp
	}
	return from, &TransitionError{Op: op, From: from, Err: err}
}
