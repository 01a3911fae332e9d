package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/daystram/splitrand/prng"
)

// emit streams generator output to stdout, raw little-endian words by
// default so the stream can be piped into dieharder or PractRand.
func emit(param prng.Param, seed, n uint64, hex bool) error {
	g := prng.New(prng.WithParam(param), prng.WithSeed(seed))

	w := bufio.NewWriterSize(os.Stdout, 1<<16)
	defer w.Flush()

	var buf [8]byte
	for i := uint64(0); n == 0 || i < n; i++ {
		v := g.Uint64()
		if hex {
			if _, err := fmt.Fprintf(w, "%016x\n", v); err != nil {
				return err
			}
			continue
		}
		binary.LittleEndian.PutUint64(buf[:], v)
		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
	}
	return nil
}
