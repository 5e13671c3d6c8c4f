package xnft

import (
	"encoding/binary"
	"math"

	"github.com/chainx-org/NftBridge/chains/locator"
)

func hasPrefix(interior, prefix []locator.Junction) bool {
	if len(interior) < len(prefix) {
		return false
	}
	for i, j := range prefix {
		if !interior[i].Equal(j) {
			return false
		}
	}
	return true
}

// PrefixedGeneralIndex matches a local class interior of the form
// <prefix>/GeneralIndex(i) and converts the index to the class id.
// The prefix is the location of the system's NFT collections, e.g. the
// pallet hosting them.
type PrefixedGeneralIndex struct {
	Prefix []locator.Junction
}

func (c PrefixedGeneralIndex) ClassId(interior []locator.Junction) (ClassId, bool) {
	if !hasPrefix(interior, c.Prefix) || len(interior) != len(c.Prefix)+1 {
		return 0, false
	}
	j := interior[len(c.Prefix)]
	if j.Kind != locator.GeneralIndexJunction {
		return 0, false
	}
	return ClassId(j.Index), true
}

func (c PrefixedGeneralIndex) Interior(classId ClassId) ([]locator.Junction, bool) {
	interior := append([]locator.Junction(nil), c.Prefix...)
	return append(interior, locator.GeneralIndex(uint64(classId))), true
}

// PrefixedGeneralKey matches a local class interior of the form
// <prefix>/GeneralKey(k) where the key holds the class id in 8
// big-endian bytes.
type PrefixedGeneralKey struct {
	Prefix []locator.Junction
}

func (c PrefixedGeneralKey) ClassId(interior []locator.Junction) (ClassId, bool) {
	if !hasPrefix(interior, c.Prefix) || len(interior) != len(c.Prefix)+1 {
		return 0, false
	}
	j := interior[len(c.Prefix)]
	if j.Kind != locator.GeneralKeyJunction || j.KeyLen != 8 {
		return 0, false
	}
	return ClassId(binary.BigEndian.Uint64(j.Key[:8])), true
}

func (c PrefixedGeneralKey) Interior(classId ClassId) ([]locator.Junction, bool) {
	var key [8]byte
	binary.BigEndian.PutUint64(key[:], uint64(classId))
	interior := append([]locator.Junction(nil), c.Prefix...)
	return append(interior, locator.GeneralKey(key[:])), true
}

// IndexInstanceConvert converts Index instance locators to instance ids.
type IndexInstanceConvert struct{}

func (IndexInstanceConvert) InstanceId(instance locator.AssetInstance) (InstanceId, bool) {
	if instance.Kind != locator.IndexInstance {
		return 0, false
	}
	return InstanceId(instance.Index), true
}

func (IndexInstanceConvert) Instance(id InstanceId) (locator.AssetInstance, bool) {
	return locator.Index(uint64(id)), true
}

// Array8InstanceConvert converts Array8 instance locators, read as
// big-endian, to instance ids.
type Array8InstanceConvert struct{}

func (Array8InstanceConvert) InstanceId(instance locator.AssetInstance) (InstanceId, bool) {
	if instance.Kind != locator.Array8Instance {
		return 0, false
	}
	return InstanceId(binary.BigEndian.Uint64(instance.Array[:8])), true
}

func (Array8InstanceConvert) Instance(id InstanceId) (locator.AssetInstance, bool) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(id))
	return locator.Array8(b), true
}

// Array4InstanceConvert converts Array4 instance locators, read as
// big-endian, to instance ids. Ids beyond 32 bits do not fit.
type Array4InstanceConvert struct{}

func (Array4InstanceConvert) InstanceId(instance locator.AssetInstance) (InstanceId, bool) {
	if instance.Kind != locator.Array4Instance {
		return 0, false
	}
	return InstanceId(binary.BigEndian.Uint32(instance.Array[:4])), true
}

func (Array4InstanceConvert) Instance(id InstanceId) (locator.AssetInstance, bool) {
	if id > math.MaxUint32 {
		return locator.AssetInstance{}, false
	}
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(id))
	return locator.Array4(b), true
}

// Array16InstanceConvert converts Array16 instance locators carrying the
// id big-endian in the trailing 8 bytes; the leading bytes must be zero.
type Array16InstanceConvert struct{}

func (Array16InstanceConvert) InstanceId(instance locator.AssetInstance) (InstanceId, bool) {
	if instance.Kind != locator.Array16Instance {
		return 0, false
	}
	for _, b := range instance.Array[:8] {
		if b != 0 {
			return 0, false
		}
	}
	return InstanceId(binary.BigEndian.Uint64(instance.Array[8:16])), true
}

func (Array16InstanceConvert) Instance(id InstanceId) (locator.AssetInstance, bool) {
	var b [16]byte
	binary.BigEndian.PutUint64(b[8:], uint64(id))
	return locator.Array16(b), true
}

// Array32InstanceConvert converts Array32 instance locators carrying the
// id big-endian in the trailing 8 bytes; the leading bytes must be zero.
type Array32InstanceConvert struct{}

func (Array32InstanceConvert) InstanceId(instance locator.AssetInstance) (InstanceId, bool) {
	if instance.Kind != locator.Array32Instance {
		return 0, false
	}
	for _, b := range instance.Array[:24] {
		if b != 0 {
			return 0, false
		}
	}
	return InstanceId(binary.BigEndian.Uint64(instance.Array[24:32])), true
}

func (Array32InstanceConvert) Instance(id InstanceId) (locator.AssetInstance, bool) {
	var b [32]byte
	binary.BigEndian.PutUint64(b[24:], uint64(id))
	return locator.Array32(b), true
}

// AccountId32Convert converts an AccountId32 terminal junction into the
// local account type. The junction must be the whole interior of a
// zero-ascent location.
type AccountId32Convert struct{}

func (AccountId32Convert) AccountId(location locator.Location) (AccountId, bool) {
	if !location.IsLocal() || len(location.Interior) != 1 {
		return AccountId{}, false
	}
	j := location.Interior[0]
	if j.Kind != locator.AccountId32Junction {
		return AccountId{}, false
	}
	return AccountId(j.Key), true
}

// AccountKey20Convert converts an AccountKey20 terminal junction into the
// local account type by zero-extending the 20-byte key.
type AccountKey20Convert struct{}

func (AccountKey20Convert) AccountId(location locator.Location) (AccountId, bool) {
	if !location.IsLocal() || len(location.Interior) != 1 {
		return AccountId{}, false
	}
	j := location.Interior[0]
	if j.Kind != locator.AccountKey20Junction {
		return AccountId{}, false
	}
	var account AccountId
	copy(account[:20], j.Key[:20])
	return account, true
}
