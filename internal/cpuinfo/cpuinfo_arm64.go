//go:build arm64

package cpuinfo

import "golang.org/x/sys/cpu"

func init() {
	hwCRC32 = cpu.ARM64.HasCRC32
}
