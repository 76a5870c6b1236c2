/*
Package num provides fixed-width unsigned integers made of 64-bit limbs
(Uint), with aliases for the common widths: U128, U192, U256 and U320.

The width is part of the type: Uint[[4]uint64] is always 256 bits, and its
limbs live in a plain array, so values never allocate and copying a value with
'=' copies every limb. Limb 0 is the least significant.

Unlike most Go integer types, Uint is mutated in place. Operations that can
run off either end of the type return an error instead of wrapping:

	u := U256From64(math.MaxUint64)
	if err := u.Mul64(3); err != nil {
		log.Fatal(err)
	}
	fmt.Println(u)
	// Output: 55340232221128654845

Uint values can be created from a variety of sources:

	From64[L](v uint64) Uint[L]
	FromLimbs[L](vals ...uint64) Uint[L]
	FromBigInt[L](v *big.Int) (out Uint[L], accurate bool)
	FromUint256[L](v *uint256.Int) (out Uint[L], accurate bool)
	U128From64(v uint64) U128
	U128FromLimbs(vals ...uint64) U128

Supported operations are addition and subtraction (by a value of the same
width or by a uint64), multiplication by a uint64, shifts, And/Or/Xor,
increment and decrement. There is no division, comparison, signed
interpretation or parsing.

Failed operations are not rolled back: when Add, Sub, Mul64 and friends return
an error, some limbs may already hold the partial result. Copy the value first
if you need the original.

Uint supports the following formatting interfaces:

	- fmt.Formatter
	- fmt.Stringer

*/
package num
