package packet

import "crypto/rand"

// XORKey is the per-packet obfuscation key.
type XORKey [4]byte

// NewXORKey draws a fresh key. crypto/rand is safe for concurrent use.
func NewXORKey() XORKey {
	var k XORKey
	rand.Read(k[:])
	return k
}

// Obfuscate XORs buf in place with key, byte i against key[i%4]. Applying it
// twice with the same key restores buf.
func Obfuscate(buf []byte, key XORKey) {
	for i := range buf {
		buf[i] ^= key[i%len(key)]
	}
}
