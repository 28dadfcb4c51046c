package stablehash

import (
	"math"
	"unsafe"
)

// Hasher computes seeded hashes of width H. It is a two-word immutable
// value; copy it freely and share it across goroutines. The zero Hasher
// uses seed 0, which is a legitimate seed: the empty-input and zero-integer
// identities hold at every seed.
type Hasher[H Value] struct {
	seed H
}

// New returns a Hasher seeded with the width-matched FNV offset basis, the
// conventional default for this family of schemes.
func New[H Value]() Hasher[H] {
	return Hasher[H]{seed: defaultSeed[H]()}
}

// NewSeeded returns a Hasher with an explicit seed. Equal seeds give
// identical hashers; distinct seeds give unrelated hash families over the
// same inputs, which is what lets a table relocate keys by reseeding.
func NewSeeded[H Value](seed H) Hasher[H] {
	return Hasher[H]{seed: seed}
}

// Seed returns the hasher's seed.
func (h Hasher[H]) Seed() H { return h.seed }

func defaultSeed[H Value]() H {
	if is32[H]() {
		return H(FnvOffsetBasis32)
	}
	basis := FnvOffsetBasis64

	return H(basis)
}

// ---- typed fast paths ----

// Bytes hashes a byte sequence with the CRC-32C scheme. Empty input hashes
// to 0 at both widths, whatever the seed.
func (h Hasher[H]) Bytes(p []byte) H {
	return hashBytes(h.seed, p)
}

// String hashes the bytes of s without copying them. String(s) equals
// Bytes for the same bytes, always, so a []byte-keyed lookup can probe a
// string-keyed table (and vice versa) without allocating.
func (h Hasher[H]) String(s string) H {
	return hashBytes(h.seed, stringBytes(s))
}

// Uint64 hashes an unsigned integer. Zero hashes to zero at every seed.
func (h Hasher[H]) Uint64(v uint64) H {
	return hashUint64(h.seed, v)
}

// Int64 hashes a signed integer by its two's-complement bit pattern.
func (h Hasher[H]) Int64(v int64) H {
	return hashUint64(h.seed, uint64(v))
}

// Uintptr hashes an address. Addresses are stable within a process only;
// never persist or transmit these hashes.
func (h Hasher[H]) Uintptr(p uintptr) H {
	return hashUint64(h.seed, uint64(p))
}

// Float64 hashes a float by its bit pattern after normalization: -0.0
// hashes as +0.0, and every NaN hashes as one canonical quiet NaN, so
// values that compare equal hash equal.
func (h Hasher[H]) Float64(v float64) H {
	return hashFloat64(h.seed, v)
}

// Float32 hashes a 32-bit float; normalization as for Float64.
func (h Hasher[H]) Float32(v float32) H {
	return hashFloat32(h.seed, v)
}

// ---- scheme internals ----

// Canonical quiet-NaN bit patterns all NaNs collapse to before hashing.
const (
	qnanBits64 uint64 = 0x7FF8000000000000
	qnanBits32 uint32 = 0x7FC00000
)

// hashUint64 is the integer scheme. A raw zero input returns zero before
// any seeding, at both widths.
func hashUint64[H Value](seed H, v uint64) H {
	if v == 0 {
		return 0
	}

	if is32[H]() {
		v ^= uint64(uint32(seed))
		x := uint32(v ^ (v >> 32))
		x = ((x >> 16) ^ x) * KnuthMultiplier32
		x = ((x >> 16) ^ x) * KnuthMultiplier32
		x = (x >> 16) ^ x

		return H(x)
	}

	x := v ^ uint64(seed)
	x = (x ^ (x >> 30)) * WangMultiplier1
	x = (x ^ (x >> 27)) * WangMultiplier2
	x ^= x >> 31

	return H(x)
}

// signedBits widens a signed value of at most 32 bits into the integer
// scheme's input: the 32-bit scheme mixes the value's own 32-bit pattern,
// the 64-bit scheme its sign extension.
func signedBits[H Value](v int32) uint64 {
	if is32[H]() {
		return uint64(uint32(v))
	}

	return uint64(v)
}

func hashFloat64[H Value](seed H, v float64) H {
	if v == 0 {
		v = 0 // collapses -0.0 into +0.0
	}
	bits := math.Float64bits(v)
	if v != v {
		bits = qnanBits64
	}

	return hashUint64(seed, bits)
}

func hashFloat32[H Value](seed H, v float32) H {
	if v == 0 {
		v = 0
	}
	bits := math.Float32bits(v)
	if v != v {
		bits = qnanBits32
	}

	return hashUint64(seed, uint64(bits))
}

// hashBytes is the byte-sequence scheme. The empty input pins to 0 at both
// widths regardless of seed. The 32-bit scheme folds one CRC-32C stream
// seeded by the hasher seed. The 64-bit scheme folds two independent
// streams, the high half over inverted bytes, and concatenates them; at
// seed 0 the low 32 bits of a 64-bit hash therefore equal the 32-bit hash
// of the same bytes.
func hashBytes[H Value](seed H, p []byte) H {
	if len(p) == 0 {
		return 0
	}

	if is32[H]() {
		return H(crc32cFold(uint32(seed), p))
	}

	lo := crc32cFold(uint32(seed), p)
	hi := crc32cFoldInverted(uint32(uint64(seed)>>32), p)

	return H(uint64(hi)<<32 | uint64(lo))
}

// stringBytes reinterprets s as a byte slice without copying. Callers must
// only read the result.
func stringBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}

	return unsafe.Slice(unsafe.StringData(s), len(s))
}
