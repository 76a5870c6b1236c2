package num

import (
	"github.com/holiman/uint256"
)

// FromUint256 creates a Uint from a uint256.Int, which uses the same
// little-endian 64-bit limb layout. If v does not fit in L, the result
// truncates to Max[L]() and accurate is 'false'.
func FromUint256[L LimbArray](v *uint256.Int) (out Uint[L], accurate bool) {
	n := len(out.limbs)
	for i := 0; i < len(*v); i++ {
		if i < n {
			out.limbs[i] = v[i]
		} else if v[i] != 0 {
			return Max[L](), false
		}
	}
	return out, true
}

// AsUint256 copies the low 256 bits of u into a new uint256.Int. Limbs above
// the fourth are dropped, in which case accurate is 'false'.
func (u Uint[L]) AsUint256() (out *uint256.Int, accurate bool) {
	out = new(uint256.Int)
	accurate = true
	for i := 0; i < len(u.limbs); i++ {
		if i < len(*out) {
			out[i] = u.limbs[i]
		} else if u.limbs[i] != 0 {
			accurate = false
		}
	}
	return out, accurate
}
