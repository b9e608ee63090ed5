package randutil

import (
	rand "math/rand/v2"

	"lukechampine.com/frand"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper centralises how we derive the two 64-bit seeds required by rand/v2
// so that every seeded run of the estimators replays the same trials.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewUnseeded returns a *rand.Rand whose PCG state is drawn from frand's
// CSPRNG, for runs that do not ask for reproducibility.
func NewUnseeded() *rand.Rand {
	return rand.New(rand.NewPCG(frand.Uint64n(^uint64(0)), frand.Uint64n(^uint64(0))))
}

// FromSeed returns New(seed) when seed is non-zero and NewUnseeded otherwise.
func FromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		return NewUnseeded()
	}
	return New(seed)
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
