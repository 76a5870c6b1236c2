package num

import "errors"

const (
	maxUint64 = 1<<64 - 1

	limbBits = 64

	intSize = 32 << (^uint(0) >> 63)
)

var (
	// ErrIndexOutOfRange is returned when a limb index is not in [0, N).
	ErrIndexOutOfRange = errors.New("num: limb index out of range")

	// ErrOverflow is returned when a carry runs past the most significant limb.
	ErrOverflow = errors.New("num: addition overflow")

	// ErrUnderflow is returned when a borrow runs past the most significant limb.
	ErrUnderflow = errors.New("num: subtraction underflow")
)

var (
	MaxU128 = Max[[2]uint64]()
	MaxU192 = Max[[3]uint64]()
	MaxU256 = Max[[4]uint64]()
	MaxU320 = Max[[5]uint64]()
)
