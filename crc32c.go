package stablehash

import (
	"hash/crc32"

	"github.com/IvanBrykalov/stablehash/internal/cpuinfo"
)

// castagnoliTable backs the accelerated CRC path. For this polynomial the
// stdlib routes Update through the CPU's CRC32 instruction when present
// (SSE4.2 on amd64, the CRC32 extension on arm64).
var castagnoliTable = crc32.MakeTable(crc32.Castagnoli)

// crc32cStep is the live per-byte implementation, chosen once at package
// init. Both candidates compute the same function bit for bit, so swapping
// them never changes a hash.
var crc32cStep = Crc32cSoft

// crcAccelerated mirrors the init-time decision for the bulk folds.
var crcAccelerated bool

func init() {
	if cpuinfo.HasCRC32() {
		crcAccelerated = true
		crc32cStep = crc32cHW
	}
}

// Crc32c advances hash by one byte of CRC-32C. It uses the CPU's CRC32
// instruction when the platform offers one and the bit-serial software step
// otherwise; the two are interchangeable for every (hash, ch) pair.
func Crc32c(hash uint32, ch byte) uint32 {
	return crc32cStep(hash, ch)
}

// Crc32cSoft is the software reference for one CRC-32C step: XOR the byte
// into the state, then eight reflected shift rounds of the Castagnoli
// polynomial. It never consults the hardware path, which makes it the fixed
// point equivalence tests compare against.
func Crc32cSoft(hash uint32, ch byte) uint32 {
	crc := hash ^ uint32(ch)
	for i := 0; i < 8; i++ {
		if crc&1 != 0 {
			crc = (crc >> 1) ^ crc32cPoly
		} else {
			crc >>= 1
		}
	}

	return crc
}

// crc32cHW performs the raw instruction step through the stdlib table
// update. crc32.Update inverts the state on entry and exit; inverting around
// it recovers the plain step the instruction computes.
func crc32cHW(hash uint32, ch byte) uint32 {
	b := [1]byte{ch}

	return ^crc32.Update(^hash, castagnoliTable, b[:])
}

// crc32cFold runs the CRC stream over p starting from state.
func crc32cFold(state uint32, p []byte) uint32 {
	if crcAccelerated {
		return ^crc32.Update(^state, castagnoliTable, p)
	}
	for _, ch := range p {
		state = Crc32cSoft(state, ch)
	}

	return state
}

// crc32cFoldInverted runs the CRC stream over the ones'-complement of each
// byte of p. The accelerated path flips bytes through a stack chunk so the
// whole-buffer update still applies; nothing escapes to the heap.
func crc32cFoldInverted(state uint32, p []byte) uint32 {
	if crcAccelerated {
		var buf [128]byte
		for len(p) > 0 {
			n := copy(buf[:], p)
			for i := 0; i < n; i++ {
				buf[i] ^= 0xFF
			}
			state = ^crc32.Update(^state, castagnoliTable, buf[:n])
			p = p[n:]
		}

		return state
	}
	for _, ch := range p {
		state = Crc32cSoft(state, ch^0xFF)
	}

	return state
}
