package stablehash

import (
	"math"
	"testing"
)

// The empty sequence is the fixed point of the byte scheme: 0 at both
// widths, whatever the seed.
func TestString_EmptyIsZero(t *testing.T) {
	t.Parallel()

	for _, seed := range []uint64{0, 1, FnvOffsetBasis64, 0xDEADBEEF} {
		if got := NewSeeded(uint32(seed)).String(""); got != 0 {
			t.Fatalf("seed %#x: empty string hashed to %#x", seed, got)
		}
		if got := NewSeeded(seed).String(""); got != 0 {
			t.Fatalf("seed %#x: empty string hashed to %#x", seed, got)
		}
		if got := NewSeeded(uint32(seed)).Bytes(nil); got != 0 {
			t.Fatalf("seed %#x: nil bytes hashed to %#x", seed, got)
		}
		if got := NewSeeded(seed).Bytes([]byte{}); got != 0 {
			t.Fatalf("seed %#x: empty bytes hashed to %#x", seed, got)
		}
	}
}

// Pinned reference vectors at the default seeds. These are the values a
// reader can reproduce by hand from the scheme definitions; if they move,
// persisted hashes break.
func TestString_PinnedVectors(t *testing.T) {
	t.Parallel()

	if got := New[uint32]().String("hello"); got != 0x8B0FA6E3 {
		t.Fatalf(`32-bit "hello": want 0x8b0fa6e3, got %#x`, got)
	}
	if got := New[uint64]().String("hello"); got != 0x63A3FD35B29A06BC {
		t.Fatalf(`64-bit "hello": want 0x63a3fd35b29a06bc, got %#x`, got)
	}
}

// At seed 0 the 64-bit scheme's low stream is exactly the 32-bit scheme, so
// truncating a 64-bit hash recovers the 32-bit one.
func TestString_WidthConsistencyAtSeedZero(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"a", "hello", "The quick brown fox", "αβγ", "\x00\x01\x02"} {
		h32 := NewSeeded[uint32](0).String(s)
		h64 := NewSeeded[uint64](0).String(s)
		if uint32(h64) != h32 {
			t.Fatalf("%q: low 32 of %#x != %#x", s, h64, h32)
		}
	}
}

// String and Bytes are two views of one scheme; a string-keyed table probed
// with []byte keys (or the reverse) must see identical hashes.
func TestString_MatchesBytes(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "a", "hello", "héllo wörld", "line1\nline2", "\x00mid\x00nul\x00"}
	for _, s := range inputs {
		if New[uint32]().String(s) != New[uint32]().Bytes([]byte(s)) {
			t.Fatalf("32-bit String/Bytes disagree on %q", s)
		}
		if NewSeeded[uint64](42).String(s) != NewSeeded[uint64](42).Bytes([]byte(s)) {
			t.Fatalf("64-bit String/Bytes disagree on %q", s)
		}
	}
}

func TestString_DistinguishesNearbyInputs(t *testing.T) {
	t.Parallel()

	h := New[uint64]()
	pairs := [][2]string{
		{"hello", "Hello"},
		{"abc", "acb"},
		{"test", "test "},
		{"a", "aa"},
	}
	for _, p := range pairs {
		if h.String(p[0]) == h.String(p[1]) {
			t.Fatalf("%q and %q collided", p[0], p[1])
		}
	}
}

// Zero is the fixed point of the integer scheme at every seed and width.
func TestUint64_ZeroIsZero(t *testing.T) {
	t.Parallel()

	for _, seed := range []uint64{0, 1, FnvOffsetBasis64, 0xFFFFFFFFFFFFFFFF} {
		if got := NewSeeded(uint32(seed)).Uint64(0); got != 0 {
			t.Fatalf("seed %#x: 32-bit hash of 0 is %#x", seed, got)
		}
		if got := NewSeeded(seed).Uint64(0); got != 0 {
			t.Fatalf("seed %#x: 64-bit hash of 0 is %#x", seed, got)
		}
	}
}

func TestUint64_PinnedVectors(t *testing.T) {
	t.Parallel()

	if got := New[uint32]().Uint64(42); got != 0x3E1B4694 {
		t.Fatalf("32-bit hash of 42: want 0x3e1b4694, got %#x", got)
	}
	if got := New[uint64]().Uint64(42); got != 0x4E43D7F82E037C16 {
		t.Fatalf("64-bit hash of 42: want 0x4e43d7f82e037c16, got %#x", got)
	}
}

func TestInt64_ExtremesAreDistinct(t *testing.T) {
	t.Parallel()

	h := New[uint64]()
	vals := []int64{math.MinInt64, -1, 1, math.MaxInt64}
	seen := make(map[uint64]int64, len(vals))
	for _, v := range vals {
		hv := h.Int64(v)
		if hv == 0 {
			t.Fatalf("nonzero input %d hashed to 0", v)
		}
		if prev, dup := seen[hv]; dup {
			t.Fatalf("%d and %d collided at %#x", prev, v, hv)
		}
		seen[hv] = v
	}
}

// A negative value carries different bits at different source widths: the
// 32-bit hash sees int32(-5) as its own pattern but int64(-5) as a folded
// sign extension, so the two must differ. Under a 64-bit hash both sign-
// extend to the same word and must agree.
func TestInt_SignExtensionFunnel(t *testing.T) {
	t.Parallel()

	a32 := New[uint32]().Any(int32(-5))
	b32 := New[uint32]().Any(int64(-5))
	if a32 == b32 {
		t.Fatal("32-bit width: int32(-5) and int64(-5) must hash differently")
	}

	a64 := New[uint64]().Any(int32(-5))
	b64 := New[uint64]().Any(int64(-5))
	if a64 != b64 {
		t.Fatalf("64-bit width: int32(-5) %#x != int64(-5) %#x", a64, b64)
	}
}

// Small non-negative values present identical bits whatever the source
// type, so every integer type agrees on them at both widths.
func TestInt_SmallValuesAgreeAcrossTypes(t *testing.T) {
	t.Parallel()

	h32 := New[uint32]()
	h64 := New[uint64]()
	want32 := h32.Uint64(42)
	want64 := h64.Uint64(42)

	for _, v := range []any{int(42), int8(42), int16(42), int32(42), int64(42),
		uint(42), uint8(42), uint16(42), uint32(42), uint64(42)} {
		if got := h32.Any(v); got != want32 {
			t.Fatalf("32-bit: %T(42) hashed to %#x, want %#x", v, got, want32)
		}
		if got := h64.Any(v); got != want64 {
			t.Fatalf("64-bit: %T(42) hashed to %#x, want %#x", v, got, want64)
		}
	}
}

// Both zeroes are one value to ==, so they are one value to the hash.
func TestFloat_ZeroCollapses(t *testing.T) {
	t.Parallel()

	negZero := math.Copysign(0, -1)
	h := New[uint64]()
	if h.Float64(0) != h.Float64(negZero) {
		t.Fatal("+0.0 and -0.0 hashed differently")
	}
	if h.Float64(0) != 0 {
		t.Fatalf("0.0 must hash to 0, got %#x", h.Float64(0))
	}

	h32 := New[uint32]()
	if h32.Float32(0) != h32.Float32(float32(negZero)) {
		t.Fatal("float32 +0.0 and -0.0 hashed differently")
	}
	if h32.Float32(0) != 0 {
		t.Fatal("float32 0.0 must hash to 0")
	}
}

// Every NaN bit pattern collapses to one canonical hash, including payload
// and sign variants that == would call unequal to everything.
func TestFloat_NaNIsCanonical(t *testing.T) {
	t.Parallel()

	nans := []float64{
		math.NaN(),
		math.Float64frombits(0x7FF8000000000001),
		math.Float64frombits(0xFFF8000000000000),
		math.Float64frombits(0x7FF0000000000001),
	}
	h := New[uint64]()
	want := h.Float64(nans[0])
	for _, v := range nans[1:] {
		if got := h.Float64(v); got != want {
			t.Fatalf("NaN %#x hashed to %#x, want %#x", math.Float64bits(v), got, want)
		}
	}

	h32 := New[uint32]()
	w32 := h32.Float32(float32(math.NaN()))
	if got := h32.Float32(math.Float32frombits(0x7FC00001)); got != w32 {
		t.Fatal("float32 NaN variants hashed differently")
	}
}

func TestFloat_DistinctValuesDistinctHashes(t *testing.T) {
	t.Parallel()

	h := New[uint64]()
	vals := []float64{1.0, -1.0, 3.14, math.Inf(1), math.Inf(-1), math.MaxFloat64}
	seen := make(map[uint64]float64, len(vals))
	for _, v := range vals {
		hv := h.Float64(v)
		if hv == 0 {
			t.Fatalf("%v hashed to 0", v)
		}
		if prev, dup := seen[hv]; dup {
			t.Fatalf("%v and %v collided", prev, v)
		}
		seen[hv] = v
	}

	// Same numeric value, different bit patterns: the widths are separate
	// domains, not a promotion.
	if New[uint32]().Float32(1.0) == New[uint32]().Float64(1.0) {
		t.Fatal("float32(1.0) and float64(1.0) must hash differently")
	}
}

func TestUintptr_Deterministic(t *testing.T) {
	t.Parallel()

	h := New[uint64]()
	p := uintptr(0xC000012345)
	if h.Uintptr(p) != h.Uintptr(p) {
		t.Fatal("same address, different hashes")
	}
	if h.Uintptr(p) == h.Uintptr(p+8) {
		t.Fatal("adjacent addresses collided")
	}
}

// Reseeding relocates everything: distinct seeds must give distinct hash
// families over the same inputs.
func TestSeed_DistinctSeedsDisagree(t *testing.T) {
	t.Parallel()

	seeds := []uint64{1, 0xDEADBEEF, FnvOffsetBasis64}
	for i := 0; i < len(seeds); i++ {
		for j := i + 1; j < len(seeds); j++ {
			a, b := NewSeeded(seeds[i]), NewSeeded(seeds[j])
			if a.String("seed probe") == b.String("seed probe") {
				t.Fatalf("seeds %#x and %#x agree on a string", seeds[i], seeds[j])
			}
			if a.Uint64(12345) == b.Uint64(12345) {
				t.Fatalf("seeds %#x and %#x agree on an integer", seeds[i], seeds[j])
			}
		}
	}
}

// New is NewSeeded at the width-matched FNV offset basis.
func TestSeed_DefaultIsFnvBasis(t *testing.T) {
	t.Parallel()

	if got := New[uint32]().Seed(); got != FnvOffsetBasis32 {
		t.Fatalf("32-bit default seed: want %#x, got %#x", FnvOffsetBasis32, got)
	}
	if got := New[uint64]().Seed(); got != FnvOffsetBasis64 {
		t.Fatalf("64-bit default seed: want %#x, got %#x", FnvOffsetBasis64, got)
	}
	if New[uint32]().String("x") != NewSeeded(uint32(FnvOffsetBasis32)).String("x") {
		t.Fatal("New and NewSeeded(basis) disagree")
	}
}

// The zero Hasher is usable and identical to an explicit zero seed.
func TestHasher_ZeroValue(t *testing.T) {
	t.Parallel()

	var h Hasher[uint64]
	if h.Seed() != 0 {
		t.Fatalf("zero hasher seed: %#x", h.Seed())
	}
	if h.String("zero") != NewSeeded[uint64](0).String("zero") {
		t.Fatal("zero hasher differs from NewSeeded(0)")
	}
}
