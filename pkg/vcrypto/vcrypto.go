// Package vcrypto is the boundary contract for the cryptographic
// primitives consumed by validators.
//
// Every function here is pure and deterministic: identical input bytes
// yield bit-identical output on every evaluator implementation. The
// verification predicates reject malformed signatures and keys by
// returning false, never by panicking, so validator authors can compose
// them inside a condition check. The underlying algorithms come from
// vetted providers; this package fixes only the contract.
package vcrypto

import (
	"crypto/sha256"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Sha2_256 returns the 32-byte SHA-256 digest of data.
func Sha2_256(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// Sha3_256 returns the 32-byte SHA3-256 digest of data.
func Sha3_256(data []byte) []byte {
	sum := sha3.Sum256(data)
	return sum[:]
}

// Keccak256 returns the 32-byte legacy Keccak-256 digest of data.
func Keccak256(data []byte) []byte {
	return ethcrypto.Keccak256(data)
}

// Blake2b_256 returns the 32-byte BLAKE2b-256 digest of data.
func Blake2b_256(data []byte) []byte {
	sum := blake2b.Sum256(data)
	return sum[:]
}

// Blake2b_224 returns the 28-byte BLAKE2b-224 digest of data.
func Blake2b_224(data []byte) []byte {
	h, err := blake2b.New(28, nil)
	if err != nil {
		// Unreachable: 28 is a valid digest size and no key is passed.
		panic(err)
	}
	h.Write(data)
	return h.Sum(nil)
}
