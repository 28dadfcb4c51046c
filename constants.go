package stablehash

// Named constants of the hashing schemes. All of them are part of the public
// contract: two builds of this package (or a port in another language) that
// agree on these values and on the mixing pipelines produce identical hashes.
const (
	// FnvOffsetBasis32 is the 32-bit FNV-1a offset basis and the default
	// seed of 32-bit hashers.
	FnvOffsetBasis32 uint32 = 0x811C9DC5

	// FnvPrime32 is the 32-bit FNV-1a prime.
	FnvPrime32 uint32 = 0x01000193

	// FnvOffsetBasis64 is the 64-bit FNV-1a offset basis and the default
	// seed of 64-bit hashers.
	FnvOffsetBasis64 uint64 = 0xCBF29CE484222325

	// FnvPrime64 is the 64-bit FNV-1a prime.
	FnvPrime64 uint64 = 0x00000100000001B3

	// KnuthMultiplier32 drives both rounds of the 32-bit integer finalizer.
	KnuthMultiplier32 uint32 = 0x45d9f3b

	// WangMultiplier1 and WangMultiplier2 drive the 64-bit integer
	// finalizer (the splitmix64 finalization constants).
	WangMultiplier1 uint64 = 0xbf58476d1ce4e5b9
	WangMultiplier2 uint64 = 0x94d049bb133111eb

	// GoldenRatio32 and GoldenRatio64 are the Boost-style hash_combine
	// increments (2^32/phi and 2^64/phi).
	GoldenRatio32 uint32 = 0x9e3779b9
	GoldenRatio64 uint64 = 0x9e3779b97f4a7c15

	// Murmur3C1 and Murmur3C2 are the MurmurHash3 64-bit finalizer
	// multipliers, used by Combine and SeedMix at 64-bit width.
	Murmur3C1 uint64 = 0xff51afd7ed558ccd
	Murmur3C2 uint64 = 0xc4ceb9fe1a85ec53

	// SeedMixMultiplier is the final multiplier of SeedMix at both widths.
	SeedMixMultiplier uint64 = 0x2545F4914F6CDD1D
)

// crc32cPoly is the reflected CRC-32C (Castagnoli) polynomial used by the
// bit-serial software step. The table-driven path uses the equivalent
// stdlib crc32.Castagnoli table.
const crc32cPoly uint32 = 0x82F63B78
