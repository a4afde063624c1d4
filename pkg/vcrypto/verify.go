package vcrypto

import (
	"crypto/ed25519"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// Expected input sizes for the verification predicates. Anything else is
// malformed and verifies to false.
const (
	Ed25519PublicKeySize = ed25519.PublicKeySize
	Ed25519SignatureSize = ed25519.SignatureSize

	SecpDigestSize           = 32
	SecpCompactSignatureSize = 64
	SchnorrPublicKeySize     = 32
)

// VerifyEd25519Signature reports whether signature is a valid Ed25519
// signature of message under publicKey. Malformed keys or signatures
// verify to false.
func VerifyEd25519Signature(publicKey, message, signature []byte) bool {
	if len(publicKey) != Ed25519PublicKeySize || len(signature) != Ed25519SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(publicKey), message, signature)
}

// VerifyEcdsaSecp256k1Signature reports whether signature is a valid
// secp256k1 ECDSA signature of the 32-byte message digest under publicKey.
// The key must be a 33-byte compressed or 65-byte uncompressed SEC point
// and the signature the 64-byte compact [R || S] form; anything malformed
// verifies to false.
func VerifyEcdsaSecp256k1Signature(publicKey, digest, signature []byte) bool {
	if len(digest) != SecpDigestSize || len(signature) != SecpCompactSignatureSize {
		return false
	}
	if len(publicKey) != 33 && len(publicKey) != 65 {
		return false
	}
	return ethcrypto.VerifySignature(publicKey, digest, signature)
}

// VerifySchnorrSecp256k1Signature reports whether signature is a valid
// BIP-340 Schnorr signature of the 32-byte message digest under the
// 32-byte x-only publicKey. Malformed keys or signatures verify to false.
func VerifySchnorrSecp256k1Signature(publicKey, digest, signature []byte) bool {
	if len(digest) != SecpDigestSize || len(publicKey) != SchnorrPublicKeySize {
		return false
	}
	pub, err := schnorr.ParsePubKey(publicKey)
	if err != nil {
		return false
	}
	sig, err := schnorr.ParseSignature(signature)
	if err != nil {
		return false
	}
	return sig.Verify(digest, pub)
}
