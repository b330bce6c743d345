package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrBadPayload is returned when a cached payload cannot be decoded.
var ErrBadPayload = errors.New("malformed cache payload")

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ResultKey generates the cache key for an optimization result. The key
// covers the full index buffer, the vertex count and the target cache
// size, so any change to the input or the tuning yields a fresh entry.
// The key format is: opt:<cacheSize>:<hash>.
func ResultKey(indices []uint32, numVertices, cacheSize int) string {
	h := sha256.New()

	var scratch [8]byte
	binary.LittleEndian.PutUint64(scratch[:], uint64(numVertices))
	h.Write(scratch[:])

	var word [4]byte
	for _, id := range indices {
		binary.LittleEndian.PutUint32(word[:], id)
		h.Write(word[:])
	}

	return fmt.Sprintf("opt:%d:%s", cacheSize, hex.EncodeToString(h.Sum(nil)))
}

// MarshalIndices encodes an index buffer as the cache payload format:
// little-endian uint32 words, no header.
func MarshalIndices(indices []uint32) []byte {
	out := make([]byte, 4*len(indices))
	for i, id := range indices {
		binary.LittleEndian.PutUint32(out[4*i:], id)
	}
	return out
}

// UnmarshalIndices decodes a payload written by [MarshalIndices].
func UnmarshalIndices(data []byte) ([]uint32, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrBadPayload, len(data))
	}
	out := make([]uint32, len(data)/4)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(data[4*i:])
	}
	return out, nil
}
