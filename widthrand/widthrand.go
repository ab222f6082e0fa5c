// Package widthrand generates random unsigned integers whose byte width
// cycles evenly through every width class of the target type.
//
// Drawing many values yields equal quantities of integers representable
// in 1 byte, 2 bytes, up to the full width of the type. Byte-oriented
// code paths, such as variable-length integer codecs, can use the
// sequence as test input with uniform coverage of all width classes.
package widthrand

import (
	"iter"
	"math"
	"math/bits"
	"math/rand/v2"
)

// Unsigned is the set of fixed-width unsigned integer types the
// generator supports.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Width returns the byte width of T.
func Width[T Unsigned]() int {
	return bits.Len64(uint64(^T(0))) / 8
}

// NewRand returns a pseudo-random generator seeded with seed.
//
// A zero seed falls back to process entropy, giving an unpredictable
// sequence. Any other seed gives a reproducible generator, which is
// what tests should pass to Cycle and CycleN.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Cycle returns an infinite sequence of random T values.
//
// The first value drawn fits in 1 byte, the second in 2 bytes, and so
// on up to the full width of T, after which the width wraps back to 1
// byte. For widths above 1 byte the highest populated byte is non-zero,
// so each value requires exactly its class's byte count to represent;
// all bytes above the class are zero.
//
// The sequence never terminates on its own; the caller bounds
// consumption by breaking out of the loop, or uses CycleN. Each call to
// Cycle (and each range over the result) starts a fresh width cursor.
// A nil rng draws from a freshly entropy-seeded generator. The sequence
// owns private cursor state and must not be shared across concurrent
// consumers.
func Cycle[T Unsigned](rng *rand.Rand) iter.Seq[T] {
	if rng == nil {
		rng = NewRand(0)
	}
	width := Width[T]()

	return func(yield func(T) bool) {
		for class := 0; ; class = (class + 1) % width {
			if !yield(draw[T](rng, class)) {
				return
			}
		}
	}
}

// CycleN is like Cycle but yields exactly n values before terminating.
// A non-positive n yields nothing.
func CycleN[T Unsigned](rng *rand.Rand, n int) iter.Seq[T] {
	if rng == nil {
		rng = NewRand(0)
	}
	width := Width[T]()

	return func(yield func(T) bool) {
		class := 0
		for i := 0; i < n; i++ {
			if !yield(draw[T](rng, class)) {
				return
			}
			class = (class + 1) % width
		}
	}
}

// draw picks a uniform value whose byte width is exactly class+1.
func draw[T Unsigned](rng *rand.Rand, class int) T {
	var lo uint64
	if class > 0 {
		lo = 1 << (8 * class)
	}

	// The widest class tops out at the full uint64 range, which the
	// shift expression cannot represent.
	hi := uint64(math.MaxUint64)
	if class < 7 {
		hi = 1<<(8*(class+1)) - 1
	}

	return T(rng.Uint64N(hi-lo+1) + lo)
}
