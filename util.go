package num

type RandSource interface {
	Uint64() uint64
}

// RandUint generates a random Uint from an external source, one limb per call
// to source.Uint64, least significant first.
func RandUint[L LimbArray](source RandSource) (out Uint[L]) {
	for i := 0; i < len(out.limbs); i++ {
		out.limbs[i] = source.Uint64()
	}
	return out
}
