package num

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"
)

// LimbArray is the set of limb arrays a Uint can be built from. The array
// length is the limb count; each limb adds 64 bits of width.
type LimbArray interface {
	~[1]uint64 | ~[2]uint64 | ~[3]uint64 | ~[4]uint64 |
		~[5]uint64 | ~[6]uint64 | ~[7]uint64 | ~[8]uint64
}

// Uint is an unsigned integer of len(L)*64 bits, stored little-endian: limb 0
// holds the least significant 64 bits.
//
// The zero value is 0. Uint is a value type; assignment copies every limb.
// Methods that change the value take a pointer receiver and modify it in
// place.
type Uint[L LimbArray] struct {
	limbs L
}

type (
	U128 = Uint[[2]uint64]
	U192 = Uint[[3]uint64]
	U256 = Uint[[4]uint64]
	U320 = Uint[[5]uint64]
)

func From64[L LimbArray](v uint64) (out Uint[L]) {
	out.limbs[0] = v
	return out
}

// FromLimbs creates a Uint from limbs listed least significant first, which
// is the reverse of the order Print uses. Missing high limbs are zero; limbs
// beyond the width of L are ignored.
func FromLimbs[L LimbArray](vals ...uint64) (out Uint[L]) {
	for i := 0; i < len(out.limbs) && i < len(vals); i++ {
		out.limbs[i] = vals[i]
	}
	return out
}

func U128From64(v uint64) U128 { return From64[[2]uint64](v) }
func U192From64(v uint64) U192 { return From64[[3]uint64](v) }
func U256From64(v uint64) U256 { return From64[[4]uint64](v) }
func U320From64(v uint64) U320 { return From64[[5]uint64](v) }

func U128FromLimbs(vals ...uint64) U128 { return FromLimbs[[2]uint64](vals...) }
func U192FromLimbs(vals ...uint64) U192 { return FromLimbs[[3]uint64](vals...) }
func U256FromLimbs(vals ...uint64) U256 { return FromLimbs[[4]uint64](vals...) }
func U320FromLimbs(vals ...uint64) U320 { return FromLimbs[[5]uint64](vals...) }

// Max returns the largest value a Uint[L] can hold, with every limb set.
func Max[L LimbArray]() (out Uint[L]) {
	for i := 0; i < len(out.limbs); i++ {
		out.limbs[i] = maxUint64
	}
	return out
}

// Len returns the number of limbs in u.
func (u Uint[L]) Len() int { return len(u.limbs) }

// Bits returns the width of u in bits.
func (u Uint[L]) Bits() int { return len(u.limbs) * limbBits }

// Limb returns limb i, where limb 0 is the least significant.
func (u Uint[L]) Limb(i int) (uint64, error) {
	if i < 0 || i >= len(u.limbs) {
		return 0, indexError(i, len(u.limbs))
	}
	return u.limbs[i], nil
}

// Limbs returns a copy of all limbs, least significant first.
func (u Uint[L]) Limbs() L { return u.limbs }

// IsUint64 reports whether u can be represented as a uint64.
func (u Uint[L]) IsUint64() bool {
	for i := 1; i < len(u.limbs); i++ {
		if u.limbs[i] != 0 {
			return false
		}
	}
	return true
}

// AsUint64 truncates u to its least significant limb. See IsUint64() if you
// want to check before you convert.
func (u Uint[L]) AsUint64() uint64 { return u.limbs[0] }

// AddAt adds v to limb idx, carrying into the limbs above it.
//
// If the carry runs out of the most significant limb, ErrOverflow is returned
// and u is left holding the wrapped limbs.
func (u *Uint[L]) AddAt(v uint64, idx int) error {
	return addAt(&u.limbs, v, idx)
}

// SubAt subtracts v from limb idx. When a limb wraps, 1 is borrowed from the
// limb above it, which may wrap in turn.
//
// If the borrow runs out of the most significant limb, ErrUnderflow is
// returned and u is left holding the wrapped limbs.
func (u *Uint[L]) SubAt(v uint64, idx int) error {
	return subAt(&u.limbs, v, idx)
}

// Add sets u to u + n, one limb at a time from limb 0 upwards.
//
// On ErrOverflow the lower limbs of n have already been added; u is not
// restored.
func (u *Uint[L]) Add(n Uint[L]) error {
	for i := 0; i < len(n.limbs); i++ {
		if err := addAt(&u.limbs, n.limbs[i], i); err != nil {
			return err
		}
	}
	return nil
}

// Add64 sets u to u + v.
func (u *Uint[L]) Add64(v uint64) error {
	return addAt(&u.limbs, v, 0)
}

// Sub sets u to u - n. Limbs are subtracted from the most significant down
// to limb 0, so a borrow always lands on a limb that n has already been
// subtracted from.
//
// On ErrUnderflow the upper limbs of n have already been subtracted; u is not
// restored.
func (u *Uint[L]) Sub(n Uint[L]) error {
	for i := len(n.limbs) - 1; i > 0; i-- {
		if err := subAt(&u.limbs, n.limbs[i], i); err != nil {
			return err
		}
	}
	return subAt(&u.limbs, n.limbs[0], 0)
}

// Sub64 sets u to u - v.
func (u *Uint[L]) Sub64(v uint64) error {
	return subAt(&u.limbs, v, 0)
}

// Inc sets u to u + 1.
func (u *Uint[L]) Inc() error {
	return addAt(&u.limbs, 1, 0)
}

// Dec sets u to u - 1.
func (u *Uint[L]) Dec() error {
	return subAt(&u.limbs, 1, 0)
}

// Mul64 sets u to u * v by shift-and-add: for every set bit i of v, u << i
// is added to the result.
//
// u itself already counts for bit 0, so when bit 0 of v is clear u is first
// subtracted from itself. Bits of u << i that move past the most significant
// limb are dropped like they are in Lsh; only a carry out of the top limb
// during the additions is reported, as ErrOverflow. u is not restored on
// error.
func (u *Uint[L]) Mul64(v uint64) error {
	old := *u
	if v&1 == 0 {
		if err := u.Sub(old); err != nil {
			return err
		}
	}

	for i := uint(1); i < limbBits; i++ {
		if (v>>i)&1 == 0 {
			continue
		}
		shifted := old
		shifted.Lsh(i)
		if err := u.Add(shifted); err != nil {
			return err
		}
	}
	return nil
}

// Lsh shifts u left by n bits. Bits moved past the most significant limb are
// lost.
//
// Any n >= 64 sets u to 0; Lsh does not move whole limbs.
func (u *Uint[L]) Lsh(n uint) {
	lshLimbs(&u.limbs, n)
}

// Rsh shifts u right by n bits.
//
// Any n >= 64 sets u to 0; Rsh does not move whole limbs.
func (u *Uint[L]) Rsh(n uint) {
	rshLimbs(&u.limbs, n)
}

func (u *Uint[L]) And(n Uint[L]) {
	for i := 0; i < len(u.limbs); i++ {
		u.limbs[i] &= n.limbs[i]
	}
}

func (u *Uint[L]) Or(n Uint[L]) {
	for i := 0; i < len(u.limbs); i++ {
		u.limbs[i] |= n.limbs[i]
	}
}

func (u *Uint[L]) Xor(n Uint[L]) {
	for i := 0; i < len(u.limbs); i++ {
		u.limbs[i] ^= n.limbs[i]
	}
}

// Dump writes the limbs of u to w in decimal, most significant first,
// separated by spaces and followed by a newline.
func (u Uint[L]) Dump(w io.Writer) error {
	var scratch [21 * 8]byte
	buf := scratch[:0]
	for i := len(u.limbs) - 1; i >= 0; i-- {
		buf = strconv.AppendUint(buf, u.limbs[i], 10)
		if i > 0 {
			buf = append(buf, ' ')
		}
	}
	buf = append(buf, '\n')
	_, err := w.Write(buf)
	return err
}

// Print dumps u to stdout. See Dump.
func (u Uint[L]) Print() {
	_ = u.Dump(os.Stdout)
}

func (u Uint[L]) String() string {
	if u.IsUint64() {
		return strconv.FormatUint(u.limbs[0], 10)
	}
	return u.AsBigInt().String()
}

func (u Uint[L]) Format(s fmt.State, c rune) {
	// FIXME: This is good enough for now, but not forever.
	u.AsBigInt().Format(s, c)
}

// FromBigInt creates a Uint from a big.Int. Overflow truncates to Max[L]()
// and sets accurate to 'false'. Negative values return 0 and 'false'.
func FromBigInt[L LimbArray](v *big.Int) (out Uint[L], accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	if v.BitLen() > out.Bits() {
		return Max[L](), false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		for i, w := range words {
			out.limbs[i] = uint64(w)
		}
	case 32:
		for i, w := range words {
			out.limbs[i/2] |= uint64(w) << (32 * uint(i%2))
		}
	default:
		panic("num: unsupported bit size")
	}
	return out, true
}

func (u Uint[L]) IntoBigInt(b *big.Int) {
	n := len(u.limbs)

	switch intSize {
	case 64:
		words := b.Bits()
		if cap(words) < n {
			words = make([]big.Word, n)
		}
		words = words[:n]
		for i := 0; i < n; i++ {
			words[i] = big.Word(u.limbs[i])
		}
		b.SetBits(words)

	case 32:
		words := b.Bits()
		if cap(words) < n*2 {
			words = make([]big.Word, n*2)
		}
		words = words[:n*2]
		for i := 0; i < n; i++ {
			words[i*2] = big.Word(u.limbs[i] & 0xFFFFFFFF)
			words[i*2+1] = big.Word(u.limbs[i] >> 32)
		}
		b.SetBits(words)

	default:
		b.SetUint64(0)
		for i := n - 1; i >= 0; i-- {
			var limb big.Int
			limb.SetUint64(u.limbs[i])
			b.Lsh(b, limbBits).Add(b, &limb)
		}
	}
}

func (u Uint[L]) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}
