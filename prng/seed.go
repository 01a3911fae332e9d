package prng

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"
)

// Seed derives a 64-bit seed from process entropy, falling back to a
// time-based mix if the entropy source is unavailable.
func Seed() uint64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err == nil {
		return binary.LittleEndian.Uint64(buf[:])
	}

	now := uint64(time.Now().UnixNano())
	now ^= now << 13
	now ^= now >> 7
	now ^= now << 17
	return now
}
