// Package id hands out the identifiers decision records are keyed by.
package id

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu      sync.Mutex
	entropy io.Reader
)

func init() {
	// The PRNG behind the monotonic reader is seeded from crypto/rand
	// once at startup; after that ULIDs minted within the same
	// millisecond stay in generation order.
	var seed int64
	_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	entropy = ulid.Monotonic(rand.New(rand.NewSource(seed)), 0)
}

// New mints a ULID string. Decision journals and their SQLite indexes
// rely on these sorting by creation time.
func New() string {
	mu.Lock()
	defer mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(time.Now().UTC()), entropy)
	if err != nil {
		// Only possible if the entropy reader fails.
		panic(err)
	}
	return id.String()
}
