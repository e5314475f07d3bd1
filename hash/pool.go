package hash

import (
	"sync"

	"github.com/zeebo/blake3"
)

// Size of the digest produced by Sum.
const Size = 32

// pool amortizes allocations of blake3 hashers by letting callers reuse them.
var pool = &sync.Pool{
	New: func() any {
		return blake3.New()
	},
}

// GetHasher will get a blake3 hasher from the pool.
// It may or may not allocate a new one. Consumers are expected
// to call Reset() on the hasher before putting it back in
// the pool.
func GetHasher() *blake3.Hasher {
	return pool.Get().(*blake3.Hasher)
}

// PutHasher returns the hasher back to the pool.
func PutHasher(hasher *blake3.Hasher) {
	hasher.Reset()
	pool.Put(hasher)
}

// Sum returns the blake3 digest of the concatenation of chunks.
func Sum(chunks ...[]byte) (rst [Size]byte) {
	hs := GetHasher()
	defer PutHasher(hs)
	for _, chunk := range chunks {
		hs.Write(chunk)
	}
	hs.Sum(rst[:0])
	return rst
}
