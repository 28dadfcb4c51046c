package stablehash

// Of hashes v with a default-seeded Hasher of width H; it is exactly
// New[H]().Any(v), packaged so call sites can hash in one expression:
//
//	k := stablehash.Of[uint32]("route:users")
//
// 32-bit is the conventional default width of this scheme family; reach for
// uint64 when feeding wide tables or folding into 64-bit state.
func Of[H Value, T any](v T) H {
	return New[H]().Any(v)
}

// OfSeeded hashes v with an explicitly seeded Hasher of width H; it is
// exactly NewSeeded(seed).Any(v).
func OfSeeded[H Value, T any](seed H, v T) H {
	return NewSeeded(seed).Any(v)
}
