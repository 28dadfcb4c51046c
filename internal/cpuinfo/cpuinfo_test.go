package cpuinfo_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/IvanBrykalov/stablehash/internal/cpuinfo"
)

// The detection answer is decided once per process; every later call must
// repeat it exactly.
func TestHasCRC32_StableAcrossCalls(t *testing.T) {
	t.Parallel()

	first := cpuinfo.HasCRC32()
	for i := 0; i < 100; i++ {
		require.Equal(t, first, cpuinfo.HasCRC32())
	}
}

// Concurrent callers, including racing first users, must all see one
// answer. Run with -race to make this meaningful.
func TestHasCRC32_ConcurrentCallersAgree(t *testing.T) {
	t.Parallel()

	workers := 4 * runtime.GOMAXPROCS(0)
	results := make([]bool, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			results[w] = cpuinfo.HasCRC32()
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for w := 1; w < workers; w++ {
		require.Equal(t, results[0], results[w], "worker %d diverged", w)
	}
}

// Once decided, the answer ignores later environment changes; the override
// is a process-start switch, not a runtime toggle.
func TestHasCRC32_DecisionIsCached(t *testing.T) {
	before := cpuinfo.HasCRC32()
	t.Setenv(cpuinfo.NoAccelEnv, "1")
	require.Equal(t, before, cpuinfo.HasCRC32())
}
