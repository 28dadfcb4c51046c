// Command hashbench runs a synthetic hashing workload and exposes optional
// pprof/Prometheus endpoints. It hashes a Zipf-skewed keyspace with a chosen
// scheme and width, maps every hash into a probe table with SeedMix, and
// reports throughput plus index-distribution metrics.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/IvanBrykalov/stablehash"
	"github.com/IvanBrykalov/stablehash/internal/util"
)

// probeFunc hashes one key and returns its probe-table index.
type probeFunc func(key string) uint64

func main() {
	// ---- Flags ----
	var (
		algo  = flag.String("algo", "crc32c", "hash scheme: crc32c | fnv1a | larson | xxhash")
		width = flag.Int("width", 64, "hash width: 32 | 64 (xxhash is 64 only)")
		table = flag.Uint64("table", 1<<16, "probe table size (power of two)")

		workers  = flag.Int("workers", 2*runtime.GOMAXPROCS(0), "number of worker goroutines")
		duration = flag.Duration("duration", 10*time.Second, "benchmark duration")

		keys     = flag.Int("keys", 1_000_000, "keyspace size")
		keyLen   = flag.Int("keylen", 16, "key length in bytes")
		zipfS    = flag.Float64("zipf_s", 1.1, "Zipf s > 1 (skew)")
		zipfV    = flag.Float64("zipf_v", 1.0, "Zipf v")
		seed     = flag.Int64("seed", time.Now().UnixNano(), "random seed for key generation")
		hashSeed = flag.Uint64("hashseed", 0, "hash seed (0 = FNV offset basis for crc32c/fnv1a; raw elsewhere)")

		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricsAddr = flag.String("http", ":8080", "serve Prometheus metrics at addr")
	)
	flag.Parse()

	if !util.IsPowerOfTwo(*table) {
		log.Fatalf("table size must be a power of two, got %d", *table)
	}

	// ---- pprof server (on DefaultServeMux) ----
	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof: serving at %s", *pprofAddr)
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	// ---- Prometheus metrics (on DefaultServeMux) ----
	metrics := newBenchMetrics(nil, *table, prometheus.Labels{
		"algo":  *algo,
		"width": fmt.Sprintf("%d", *width),
	})
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Printf("metrics: serving at %s", *metricsAddr)
		log.Println(http.ListenAndServe(*metricsAddr, nil))
	}()

	// ---- Build the probe pipeline ----
	probe, err := buildProbe(*algo, *width, *hashSeed, *table)
	if err != nil {
		log.Fatal(err)
	}

	// ---- Generate the keyspace ----
	keySet := makeKeys(*keys, *keyLen, *seed)

	// ---- Snapshot flags for goroutines ----
	keysMax := uint64(len(keySet) - 1)
	seedBase := *seed
	zipfSVal := *zipfS
	zipfVVal := *zipfV
	workersN := *workers
	if workersN <= 0 {
		workersN = 1
	}

	// ---- Load generation ----
	var total, totalBytes uint64
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(workersN)
	for w := 0; w < workersN; w++ {
		go func(id int) {
			defer wg.Done()

			// Each worker gets its own RNG + Zipf (rand.Rand is NOT goroutine-safe).
			localR := rand.New(rand.NewSource(seedBase + int64(id)*9973))
			localZipf := rand.NewZipf(localR, zipfSVal, zipfVVal, keysMax)

			for {
				select {
				case <-ctx.Done():
					return
				default:
				}

				k := keySet[localZipf.Uint64()]
				idx := probe(k)
				metrics.observe(len(k), idx)
				atomic.AddUint64(&total, 1)
				atomic.AddUint64(&totalBytes, uint64(len(k)))
			}
		}(w)
	}
	wg.Wait()
	elapsed := time.Since(start)

	// ---- Report ----
	ops := atomic.LoadUint64(&total)
	bytesN := atomic.LoadUint64(&totalBytes)
	opsPerSec := float64(ops) / elapsed.Seconds()
	metrics.setRate(opsPerSec)

	fmt.Printf("algo=%s width=%d table=%d workers=%d keys=%d keylen=%d dur=%v seed=%d\n",
		*algo, *width, *table, workersN, len(keySet), *keyLen, elapsed, seedBase)
	fmt.Printf("ops=%d (%.0f ops/s)  bytes=%d (%.1f MB/s)\n",
		ops, opsPerSec, bytesN, float64(bytesN)/elapsed.Seconds()/1e6)
}

// buildProbe wires the chosen scheme, width, and seed into one closure so
// the hot loop never branches on configuration.
func buildProbe(algo string, width int, hashSeed, table uint64) (probeFunc, error) {
	if width != 32 && width != 64 {
		return nil, fmt.Errorf("unknown width %d (use 32 or 64)", width)
	}

	switch algo {
	case "crc32c":
		if width == 32 {
			seed := uint32(hashSeed)
			if hashSeed == 0 {
				seed = stablehash.FnvOffsetBasis32
			}
			h := stablehash.NewSeeded(seed)
			return func(k string) uint64 {
				return uint64(stablehash.SeedMix(seed, h.String(k), table))
			}, nil
		}
		seed := hashSeed
		if seed == 0 {
			seed = stablehash.FnvOffsetBasis64
		}
		h := stablehash.NewSeeded(seed)
		return func(k string) uint64 {
			return stablehash.SeedMix(seed, h.String(k), table)
		}, nil

	case "fnv1a":
		if width == 32 {
			seed := uint32(hashSeed)
			if hashSeed == 0 {
				seed = stablehash.FnvOffsetBasis32
			}
			return func(k string) uint64 {
				h := seed
				for i := 0; i < len(k); i++ {
					h = stablehash.Fnv1a(h, k[i])
				}
				return uint64(stablehash.SeedMix(seed, h, table))
			}, nil
		}
		seed := hashSeed
		if seed == 0 {
			seed = stablehash.FnvOffsetBasis64
		}
		return func(k string) uint64 {
			h := seed
			for i := 0; i < len(k); i++ {
				h = stablehash.Fnv1a(h, k[i])
			}
			return stablehash.SeedMix(seed, h, table)
		}, nil

	case "larson":
		if width == 32 {
			seed := uint32(hashSeed)
			return func(k string) uint64 {
				h := seed
				for i := 0; i < len(k); i++ {
					h = stablehash.Larson(h, k[i])
				}
				return uint64(stablehash.SeedMix(seed, h, table))
			}, nil
		}
		return func(k string) uint64 {
			h := hashSeed
			for i := 0; i < len(k); i++ {
				h = stablehash.Larson(h, k[i])
			}
			return stablehash.SeedMix(hashSeed, h, table)
		}, nil

	case "xxhash":
		if width != 64 {
			return nil, fmt.Errorf("xxhash supports width 64 only")
		}
		return func(k string) uint64 {
			return stablehash.SeedMix(hashSeed, xxhash.Sum64String(k), table)
		}, nil
	}

	return nil, fmt.Errorf("unknown algo %q (use crc32c, fnv1a, larson, or xxhash)", algo)
}

// makeKeys generates the keyspace up front so workers only read.
func makeKeys(n, keyLen int, seed int64) []string {
	if n <= 0 {
		n = 1
	}
	if keyLen <= 0 {
		keyLen = 1
	}

	r := rand.New(rand.NewSource(seed))
	keys := make([]string, n)
	buf := make([]byte, keyLen)
	for i := range keys {
		for j := range buf {
			buf[j] = byte('a' + r.Intn(26))
		}
		keys[i] = string(buf)
	}
	return keys
}
