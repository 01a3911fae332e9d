package main

import (
	"log"

	benchpkg "github.com/daystram/splitrand/bench"
	"github.com/daystram/splitrand/prng"
)

func bench(param prng.Param, draws uint64, streams int) error {
	log.Printf("============ bench (param=%s)\n", param)

	out := make(chan string)
	done := make(chan error)
	go func() {
		err := benchpkg.Throughput(draws, streams, param, out)
		close(out)
		done <- err
	}()
	for line := range out {
		log.Println(line)
	}
	return <-done
}
