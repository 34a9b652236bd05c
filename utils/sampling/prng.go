package sampling

import (
	"fmt"
	"io"
	"slices"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// PRNG is a source of random bytes.
type PRNG interface {
	io.Reader
}

// KeyedPRNG deterministically generates a stream of bytes from a key using the
// blake2b XOF. Two KeyedPRNG instantiated with the same key produce the same stream,
// which makes randomized tests and examples reproducible.
type KeyedPRNG struct {
	mutex sync.Mutex
	key   []byte
	xof   blake2b.XOF
}

// NewKeyedPRNG creates a new instance of KeyedPRNG.
// The key is at most 64 bytes; a nil key is treated as key=[]byte{}.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return nil, fmt.Errorf("cannot NewKeyedPRNG: %w", err)
	}
	return &KeyedPRNG{key: slices.Clone(key), xof: xof}, nil
}

// Key returns a copy of the key used to seed the PRNG.
func (prng *KeyedPRNG) Key() []byte {
	return slices.Clone(prng.key)
}

// Read fills sum with the next bytes of the stream.
// Concurrent calls are serialized, but their interleaving makes the
// stream seen by each caller non-deterministic.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	return prng.xof.Read(sum)
}

// Reset rewinds the stream to its first byte.
func (prng *KeyedPRNG) Reset() {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	prng.xof.Reset()
}
