// Command bench runs a synthetic workload against the adaptive cache and
// exposes optional pprof/Prometheus endpoints.
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
	"strconv"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/gostructs/ds/lru"
	pmet "github.com/gostructs/ds/metrics/prom"
)

func main() {
	// ---- Flags ----
	var (
		capacity  = flag.Int("cap", 10_000, "initial cache capacity (entries)")
		threshold = flag.Uint64("threshold", 1000, "lookups between capacity re-evaluations")
		target    = flag.Float64("target", 0.8, "target hit ratio")

		workers  = flag.Int("workers", 2*runtime.GOMAXPROCS(0), "number of worker goroutines")
		duration = flag.Duration("duration", 10*time.Second, "benchmark duration")
		readPct  = flag.Int("reads", 80, "read percentage [0..100]")

		keys    = flag.Int("keys", 1_000_000, "keyspace size")
		zipfS   = flag.Float64("zipf_s", 1.1, "Zipf s > 1 (skew)")
		zipfV   = flag.Float64("zipf_v", 1.0, "Zipf v")
		seed    = flag.Int64("seed", time.Now().UnixNano(), "random seed")
		preload = flag.Int("preload", 0, "preload entries (0 = cap/2)")

		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricsAddr = flag.String("http", ":8080", "serve Prometheus metrics at addr")
	)
	flag.Parse()

	// ---- pprof server (on DefaultServeMux) ----
	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof: serving at %s", *pprofAddr)
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	// ---- Prometheus metrics (on DefaultServeMux) ----
	metrics := pmet.New(nil, "ds", "bench", nil)
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Printf("metrics: serving at %s", *metricsAddr)
		log.Println(http.ListenAndServe(*metricsAddr, nil))
	}()

	// ---- Build cache ----
	c := lru.New[string, string](lru.Options[string, string]{
		Capacity:       *capacity,
		Threshold:      *threshold,
		TargetHitRatio: *target,
		MaxCapacity:    4 * *capacity,
		Metrics:        metrics,
	})
	c.SetCollectionSize(*keys)

	// ---- Preload half capacity to get a realistic hit-rate ----
	pl := *preload
	if pl == 0 {
		pl = *capacity / 2
	}
	for i := 0; i < pl; i++ {
		k := "k:" + strconv.Itoa(i)
		c.Set(k, "v"+strconv.Itoa(i))
	}

	// ---- Snapshot flags for goroutines ----
	readPctVal := *readPct
	keysMax := uint64(*keys - 1)
	seedBase := *seed
	zipfSVal := *zipfS
	zipfVVal := *zipfV
	workersN := *workers
	if workersN <= 0 {
		workersN = 1
	}

	// ---- Load generation ----
	var reads, writes, hits, misses, total uint64
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workersN; w++ {
		id := w
		g.Go(func() error {
			// Each worker gets its own RNG + Zipf (rand.Rand is NOT goroutine-safe).
			localR := rand.New(rand.NewSource(seedBase + int64(id)*9973))
			localZipf := rand.NewZipf(localR, zipfSVal, zipfVVal, keysMax)

			keyByZipf := func() string {
				return "k:" + strconv.FormatUint(localZipf.Uint64(), 10)
			}

			for {
				select {
				case <-ctx.Done():
					return nil
				default:
				}

				atomic.AddUint64(&total, 1)
				if int(localR.Int31n(100)) < readPctVal {
					atomic.AddUint64(&reads, 1)
					if _, ok := c.Get(keyByZipf()); ok {
						atomic.AddUint64(&hits, 1)
					} else {
						atomic.AddUint64(&misses, 1)
					}
				} else {
					atomic.AddUint64(&writes, 1)
					c.Set(keyByZipf(), "v"+strconv.Itoa(localR.Int()))
				}
			}
		})
	}
	_ = g.Wait()
	elapsed := time.Since(start)

	// ---- Report ----
	ops := atomic.LoadUint64(&total)
	readsN := atomic.LoadUint64(&reads)
	writesN := atomic.LoadUint64(&writes)
	hitsN := atomic.LoadUint64(&hits)
	missesN := atomic.LoadUint64(&misses)

	hitRate := 0.0
	if readsN > 0 {
		hitRate = float64(hitsN) / float64(readsN) * 100
	}

	fmt.Printf("cap=%d threshold=%d target=%.2f workers=%d keys=%s dur=%v seed=%d\n",
		*capacity, *threshold, *target, workersN, humanize.Comma(int64(*keys)), elapsed, seedBase)
	fmt.Printf("ops=%s (%s ops/s)  reads=%s  writes=%s\n",
		humanize.Comma(int64(ops)),
		humanize.CommafWithDigits(float64(ops)/elapsed.Seconds(), 0),
		humanize.Comma(int64(readsN)), humanize.Comma(int64(writesN)))
	fmt.Printf("hits=%s  misses=%s  hit-rate=%.2f%%\n",
		humanize.Comma(int64(hitsN)), humanize.Comma(int64(missesN)), hitRate)
	fmt.Printf("adapted capacity=%s  Len()=%s\n",
		humanize.Comma(int64(c.Capacity())), humanize.Comma(int64(c.Len())))
	fmt.Println(c.Stats())
}
