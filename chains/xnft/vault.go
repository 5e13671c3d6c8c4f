package xnft

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// ClassAccountOf derives the vault sub-account assigned to one derivative
// class. Stashed derivatives of the class are parked under this account,
// keeping per-class custody separable from the vault's own holdings.
func ClassAccountOf(vault AccountId, classId ClassId) AccountId {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err)
	}
	h.Write([]byte("xnft/class"))
	h.Write(vault[:])
	var id [8]byte
	binary.LittleEndian.PutUint64(id[:], uint64(classId))
	h.Write(id[:])

	var account AccountId
	copy(account[:], h.Sum(nil))
	return account
}
