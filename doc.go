// Package stablehash provides deterministic, seeded, non-cryptographic
// hashing at 32- and 64-bit widths: per-byte primitives (Larson, FNV-1a,
// CRC-32C with hardware dispatch), hash-combination helpers, a power-of-two
// index mixer, and a polymorphic Hasher that covers strings, integers,
// floats, pointers, and composite values.
//
// Design
//
//   - Widths: every generic operation is constrained to exactly uint32 or
//     uint64 (the Value constraint). Other widths do not instantiate; the
//     mixing pipelines are tuned per width, not scaled generically.
//
//   - Determinism: all schemes are pure functions of (seed, input). Equal
//     inputs hash equal across calls, goroutines, and processes, with two
//     documented exceptions: address hashes (Uintptr, unsafe.Pointer) and
//     the comparable-kind fallback are stable only within a process.
//
//   - Strings: CRC-32C streams, one for 32-bit output and an independent
//     second stream over inverted bytes for the high half of 64-bit output.
//     At seed 0 the low 32 bits of a 64-bit string hash equal the 32-bit
//     hash, which keeps mixed-width deployments diagnosable. The empty
//     string hashes to 0 at every seed.
//
//   - Integers: zero hashes to zero; everything else runs a width-matched
//     multiplicative finalizer (Knuth-style double round at 32 bits, the
//     splitmix64 finalizer at 64). Floats hash by normalized bit pattern,
//     so 0.0 == -0.0 and all NaNs agree.
//
//   - Hardware: CRC-32C steps use the CPU's CRC32 instruction when the
//     detector finds one (SSE4.2 on amd64, the arm64 CRC32 extension),
//     falling back to a bit-serial software step. Both arms compute the
//     same function bit for bit, so the choice never changes a hash. Set
//     STABLEHASH_NOACCEL=1 to force the software arm.
//
// Basic usage
//
//	k32 := stablehash.Of[uint32]("user:1138")
//	k64 := stablehash.Of[uint64]("user:1138")
//
// Hot paths keep a Hasher and use the typed methods, which do not allocate:
//
//	h := stablehash.New[uint64]()
//	k := h.String("user:1138") // == h.Bytes(...) for the same bytes
//
// Seeding
//
//	a := stablehash.NewSeeded[uint32](0x12345678)
//	b := stablehash.NewSeeded[uint32](0x87654321)
//	// a and b disagree on essentially every input; either alone is stable.
//
// Composite keys
//
//	type route struct {
//		Tenant string
//		Shard  int
//	}
//	k := stablehash.Of[uint64](route{"acme", 7}) // fields folded in order
//
// Table indexing
//
//	slot := stablehash.SeedMix(seed, h.String(key), uint64(len(table)))
//	// len(table) must be a power of two; reseeding relocates keys without
//	// rehashing them.
//
// Unhashable values
//
// Maps and funcs panic rather than hash weakly. Channels and other
// comparable kinds without a structural scheme borrow the runtime's maphash
// under a process-local seed; treat those hashes as per-process values, and
// keep such fields exported, since the fallback cannot box an unexported
// field's value.
//
// See algorithms.go for the primitive building blocks and any.go for the
// exact composite rules the polymorphic path applies.
package stablehash
