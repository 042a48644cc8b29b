package utils

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Keccak256 returns the legacy Keccak-256 digest (the Ethereum variant,
// not FIPS SHA3-256) of the concatenated inputs.
func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// Keccak256Hex returns Keccak256 as a 0x-prefixed lowercase hex string.
func Keccak256Hex(data ...[]byte) string {
	return "0x" + hex.EncodeToString(Keccak256(data...))
}

// TransactionHash derives the receipt hash of a contract write. Each field
// is length-prefixed so that ("ab","c") and ("a","bc") hash differently.
//
//	hash = keccak256(len|from | len|key | len|value | version | unixNano)
func TransactionHash(from, key string, value []byte, version, unixNano int64) string {
	h := sha3.NewLegacyKeccak256()
	for _, part := range [][]byte{[]byte(from), []byte(key), value} {
		var size [8]byte
		binary.BigEndian.PutUint64(size[:], uint64(len(part)))
		h.Write(size[:])
		h.Write(part)
	}

	var tail [16]byte
	binary.BigEndian.PutUint64(tail[:8], uint64(version))
	binary.BigEndian.PutUint64(tail[8:], uint64(unixNano))
	h.Write(tail[:])

	return "0x" + hex.EncodeToString(h.Sum(nil))
}
