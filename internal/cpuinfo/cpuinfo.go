// Package cpuinfo answers one question: does this CPU provide a CRC-32
// instruction usable for the Castagnoli polynomial. The answer is computed
// lazily, exactly once, and is safe under concurrent first use.
package cpuinfo

import (
	"os"
	"sync"
)

// NoAccelEnv, when set to any non-empty value before first use, forces the
// software CRC path regardless of what the CPU offers. Useful for ruling the
// hardware path in or out when chasing a platform-specific difference.
const NoAccelEnv = "STABLEHASH_NOACCEL"

// hwCRC32 is set by the per-arch init in this package. It stays false on
// architectures without a CRC32 extension.
var hwCRC32 bool

var hasCRC32 = sync.OnceValue(func() bool {
	if os.Getenv(NoAccelEnv) != "" {
		return false
	}

	return hwCRC32
})

// HasCRC32 reports whether CRC-32C steps may use the CPU instruction.
// The first call decides; later calls, and changes to the environment after
// the first call, never change the answer.
func HasCRC32() bool {
	return hasCRC32()
}
