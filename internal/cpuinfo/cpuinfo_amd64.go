//go:build amd64

package cpuinfo

import "golang.org/x/sys/cpu"

func init() {
	// SSE4.2 carries the CRC32 instruction family.
	hwCRC32 = cpu.X86.HasSSE42
}
