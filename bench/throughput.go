// Package bench measures generator throughput, comparing one exclusive
// engine against factory-partitioned streams drained in parallel.
package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/splitrand/prng"
)

// Throughput draws `draws` values from a single engine, then the same total
// spread across `streams` partitioned streams running concurrently, and
// reports both rates on out. streams must be in [1, 128], one factory epoch.
func Throughput(draws uint64, streams int, param prng.Param, out chan string) error {
	if streams < 1 || streams > 128 {
		return fmt.Errorf("streams must be in [1, 128] but was %d", streams)
	}

	printer := message.NewPrinter(language.English)

	start := time.Now()
	sink := runSerial(draws, param)
	serial := time.Since(start)
	out <- printer.Sprintf("serial   draws=%d rate=%dn/s (%.3fs elapsed)",
		draws, rate(draws, serial), serial.Seconds())

	start = time.Now()
	sink ^= runParallel(draws, streams, param)
	parallel := time.Since(start)
	out <- printer.Sprintf("parallel draws=%d streams=%d rate=%dn/s (%.3fs elapsed)",
		draws, streams, rate(draws, parallel), parallel.Seconds())

	// Keep the draws observable so the loops cannot be elided.
	out <- fmt.Sprintf("checksum=%#x", sink)
	return nil
}

func runSerial(draws uint64, param prng.Param) uint64 {
	g := prng.New(prng.WithParam(param), prng.WithSeed(prng.Seed()))
	var sink uint64
	for i := uint64(0); i < draws; i++ {
		sink ^= g.Uint64()
	}
	return sink
}

func runParallel(draws uint64, streams int, param prng.Param) uint64 {
	f := prng.NewFactory(prng.WithFactoryParam(param))
	share := draws / uint64(streams)

	var sink uint64
	var wg sync.WaitGroup
	for w := 0; w < streams; w++ {
		n := share
		if w == 0 {
			n += draws % uint64(streams)
		}
		stream := f.Acquire()
		wg.Add(1)
		go func() {
			defer wg.Done()
			var local uint64
			for i := uint64(0); i < n; i++ {
				local ^= stream.Uint64()
			}
			atomic.AddUint64(&sink, local)
		}()
	}
	wg.Wait()
	return sink
}

func rate(draws uint64, elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}
	return int(float64(draws) / elapsed.Seconds())
}
