package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/daystram/splitrand/prng"
)

const (
	exitOK  = 0
	exitErr = 1
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	seedFlag  = flag.Uint64("seed", 0, "seed (0 draws from entropy)")
	paramFlag = flag.String("param", "default", "parameter preset: default, lecuyer1, lecuyer2, lecuyer3")

	emitRun = flag.Bool("emit", false, "run emit mode: raw 64-bit words to stdout")
	emitN   = flag.Uint64("emit.n", 0, "words to emit in emit mode (0 streams forever)")
	emitHex = flag.Bool("emit.hex", false, "emit hex lines instead of raw bytes")

	statsRun = flag.Bool("stats", false, "run stats mode")
	statsN   = flag.Uint64("stats.n", 1_000_000, "draws to accumulate in stats mode")
	statsK   = flag.Int("stats.bins", 100, "chi-square bins in stats mode")

	leapRun = flag.Bool("leap", false, "run leapfrog demo mode")
	leapP   = flag.Int("leap.p", 3, "sub-stream count in leapfrog mode")
	leapN   = flag.Int("leap.n", 8, "draws per sub-stream in leapfrog mode")

	benchRun     = flag.Bool("bench", false, "run bench mode")
	benchN       = flag.Uint64("bench.n", 100_000_000, "draws in bench mode")
	benchStreams = flag.Int("bench.streams", 8, "partitioned streams in bench mode")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	err := realMain()
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain() error {
	param, err := resolveParam(*paramFlag)
	if err != nil {
		return err
	}
	seed := *seedFlag
	if seed == 0 {
		seed = prng.Seed()
	}

	if *emitRun {
		return emit(param, seed, *emitN, *emitHex)
	}
	if *statsRun {
		return stats(param, seed, *statsN, *statsK)
	}
	if *leapRun {
		return leap(param, seed, *leapP, *leapN)
	}
	if *benchRun {
		return bench(param, *benchN, *benchStreams)
	}

	flag.Usage()
	return nil
}

func resolveParam(name string) (prng.Param, error) {
	switch name {
	case "default":
		return prng.ParamDefault, nil
	case "lecuyer1":
		return prng.ParamLecuyer1, nil
	case "lecuyer2":
		return prng.ParamLecuyer2, nil
	case "lecuyer3":
		return prng.ParamLecuyer3, nil
	default:
		return prng.Param{}, fmt.Errorf("unknown parameter preset %q", name)
	}
}
