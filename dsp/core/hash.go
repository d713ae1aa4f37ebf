package core

// Hashw is a 32-bit integer hash (Chris Wellons).
func Hashw(x uint32) uint32 {
	x = (x ^ (x >> 16)) * 0x7feb352d
	x = (x ^ (x >> 15)) * 0x846ca68b

	return x ^ (x >> 16)
}

// Hashk is a 64-bit integer hash. Combinators use it to derive
// structural identifiers from their children.
func Hashk(x uint64) uint64 {
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x = (x ^ (x >> 31)) * 0xd6e8feb86659fd93

	return x ^ (x >> 32)
}

// Rnd is an indexed pseudorandom number in [0, 1) (SplitMix).
func Rnd(x int64) float64 {
	u := uint64(x) * 0x9e3779b97f4a7c15
	u = (u ^ (u >> 30)) * 0xbf58476d1ce4e5b9
	u = (u ^ (u >> 27)) * 0x94d049bb133111eb
	u ^= u >> 31

	return float64(u>>11) / float64(uint64(1)<<53)
}

// Rand is a tiny deterministic generator for noise units.
type Rand struct {
	state uint64
}

// NewRand returns a generator seeded with seed.
func NewRand(seed uint64) Rand {
	return Rand{state: seed}
}

// Uint32 advances the generator and returns 32 random bits.
func (r *Rand) Uint32() uint32 {
	r.state = r.state*0xaf251af3b0f025b5 + 1
	return Hashw(uint32(r.state >> 32))
}

// Float11 advances the generator and returns a value in [-1, 1].
func (r *Rand) Float11() float64 {
	return float64(r.Uint32())/float64(1<<32-1)*2 - 1
}
