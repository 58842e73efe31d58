package solver

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand"
)

// RNG is the randomness the solver needs: a uniform float in [0, 1) for
// Metropolis acceptance, and a uniform int in [0, n) for move selection.
// Production code should use NewCSPRNG; tests can inject a seeded
// *math/rand.Rand (or any other implementation) to recover determinism,
// rather than relying on a process-wide RNG.
type RNG interface {
	Float64() float64
	Intn(n int) int
}

// csprngSource is a math/rand.Source64 backed by the OS CSPRNG.
// Cryptographically strong randomness for move selection and Metropolis
// acceptance avoids deterministic stuck trajectories across runs;
// math/rand's API is still the most convenient surface for the
// Float64/Intn calls the solver needs, so we seed a math/rand.Rand with
// this source rather than hand-rolling both.
type csprngSource struct{}

func (csprngSource) Seed(int64) {}

func (csprngSource) Int63() int64 {
	return int64(csprngSource{}.Uint64() >> 1)
}

func (csprngSource) Uint64() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand.Read only fails if the OS entropy source is
		// unavailable, which this library cannot recover from.
		panic("solver: OS CSPRNG unavailable: " + err.Error())
	}
	return binary.BigEndian.Uint64(buf[:])
}

// NewCSPRNG returns an RNG backed by the OS's cryptographically strong
// random source, for production use.
func NewCSPRNG() RNG {
	return mathrand.New(csprngSource{})
}
