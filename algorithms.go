package stablehash

import "unsafe"

// Value constrains hash values to the two supported widths. The type set is
// closed on purpose: every mixing pipeline in this package is tuned for
// exactly 32 or 64 bits, and instantiating one at any other width is a bug
// the compiler should catch, not a runtime surprise.
type Value interface {
	uint32 | uint64
}

// is32 reports whether H is the 32-bit width. Each instantiation resolves to
// a constant branch, so the check is free in practice.
func is32[H Value]() bool {
	var h H
	return unsafe.Sizeof(h) == 4
}

// ---- per-byte steps ----

// Larson advances hash by one byte using Larson's multiply-add step (h*37+ch).
// Fast and simple; distribution quality is modest, so prefer the CRC-based
// schemes for table keys.
func Larson[H Value](hash H, ch byte) H {
	return 37*hash + H(ch)
}

// Fnv1a advances hash by one byte using the FNV-1a step (XOR then multiply
// by the width-matched FNV prime).
func Fnv1a[H Value](hash H, ch byte) H {
	if is32[H]() {
		return H((uint32(hash) ^ uint32(ch)) * FnvPrime32)
	}
	return H((uint64(hash) ^ uint64(ch)) * FnvPrime64)
}

// ---- index mapping ----

// SeedMix mixes seed and hash together and maps the result into [0, size).
// size must be a power of two; the final reduction is a bitmask, so a
// non-power-of-two size yields a deterministic but meaningless index rather
// than a panic. Intended for open-addressing probe schemes where reseeding
// must relocate keys without rehashing them.
func SeedMix[H Value](seed, hash H, size uint64) H {
	if is32[H]() {
		x := uint32(seed) + uint32(hash)
		x ^= x >> 12
		x ^= x << 25
		x ^= x >> 27

		return H((uint64(x) * SeedMixMultiplier) & (size - 1))
	}

	x := uint64(seed) + uint64(hash)
	x ^= x >> 33
	x *= Murmur3C1
	x ^= x >> 33
	x *= Murmur3C2
	x ^= x >> 33

	return H((x * SeedMixMultiplier) & (size - 1))
}

// ---- hash combination ----

// CombineFnv folds newHash into existingHash FNV-1a style: XOR then multiply
// by the caller-chosen prime.
func CombineFnv[H Value](existingHash, newHash, prime H) H {
	return (existingHash ^ newHash) * prime
}

// Combine folds newHash into existingHash using the Boost hash_combine
// recipe with the width-matched golden-ratio increment. The 64-bit variant
// finishes with the MurmurHash3 triple-avalanche rounds so that high bits
// are as well mixed as low ones. Order matters: Combine(a, b) and
// Combine(b, a) are different values in general.
func Combine[H Value](existingHash, newHash H) H {
	if is32[H]() {
		x := uint32(existingHash)
		x ^= uint32(newHash) + GoldenRatio32 + (x << 6) + (x >> 2)

		return H(x)
	}

	x := uint64(existingHash)
	x ^= uint64(newHash) + GoldenRatio64 + (x << 6) + (x >> 2)

	x ^= x >> 33
	x *= Murmur3C1
	x ^= x >> 33
	x *= Murmur3C2
	x ^= x >> 33

	return H(x)
}
