package num

import (
	"fmt"
	"math/bits"
)

// addAt adds v into limb idx of l. A carry out of a limb is added to the next
// limb up as a 1, until a limb absorbs it without wrapping. If the most
// significant limb wraps, it is left wrapped and ErrOverflow is returned.
func addAt[L LimbArray](l *L, v uint64, idx int) error {
	n := len(*l)
	if idx < 0 || idx >= n {
		return indexError(idx, n)
	}

	for {
		var carry uint64
		(*l)[idx], carry = bits.Add64((*l)[idx], v, 0)
		if carry == 0 {
			return nil
		}
		if idx == n-1 {
			return fmt.Errorf("%w: carry out of limb %d", ErrOverflow, idx)
		}
		v, idx = 1, idx+1
	}
}

// subAt subtracts v from limb idx of l. When a limb wraps, the limb keeps the
// wrapped difference and 1 is subtracted from the next limb up, which may wrap
// in turn:
//
//	0x16F - 0x7A, 8-bit low limb: 0x6F - 0x7A --> 0xF5, borrow 1
//	                      high limb: 0x1 - 0x1 --> 0x0
//	                         result: 0x0F5
//
// If the most significant limb wraps, it is left wrapped and ErrUnderflow is
// returned.
func subAt[L LimbArray](l *L, v uint64, idx int) error {
	n := len(*l)
	if idx < 0 || idx >= n {
		return indexError(idx, n)
	}

	for {
		var borrow uint64
		(*l)[idx], borrow = bits.Sub64((*l)[idx], v, 0)
		if borrow == 0 {
			return nil
		}
		if idx == n-1 {
			return fmt.Errorf("%w: borrow out of limb %d", ErrUnderflow, idx)
		}
		v, idx = 1, idx+1
	}
}

// lshLimbs shifts every limb left by n, moving the bits that fall off the top
// of each limb into the bottom of the next one. Bits leaving the most
// significant limb are discarded. n >= 64 zeroes l.
func lshLimbs[L LimbArray](l *L, n uint) {
	if n >= limbBits {
		var zero L
		*l = zero
		return
	}

	var carry uint64
	for i := 0; i < len(*l); i++ {
		cur := (*l)[i]
		(*l)[i] = (cur << n) | carry
		carry = cur >> (limbBits - n)
	}
}

// rshLimbs is the mirror of lshLimbs: bits falling off the bottom of a limb
// move into the top of the next limb down. n >= 64 zeroes l.
func rshLimbs[L LimbArray](l *L, n uint) {
	if n >= limbBits {
		var zero L
		*l = zero
		return
	}

	var carry uint64
	for i := len(*l) - 1; i >= 0; i-- {
		cur := (*l)[i]
		(*l)[i] = (cur >> n) | carry
		carry = cur << (limbBits - n)
	}
}

func indexError(idx, n int) error {
	return fmt.Errorf("%w: index %d, limbs %d", ErrIndexOutOfRange, idx, n)
}
