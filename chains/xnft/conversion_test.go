package xnft_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainx-org/NftBridge/chains/locator"
	"github.com/chainx-org/NftBridge/chains/xnft"
)

func TestPrefixedGeneralIndex(t *testing.T) {
	convert := xnft.PrefixedGeneralIndex{Prefix: collections}

	classId, ok := convert.ClassId([]locator.Junction{locator.PalletInstance(7), locator.GeneralIndex(3)})
	require.True(t, ok)
	require.Equal(t, xnft.ClassId(3), classId)

	interior, ok := convert.Interior(3)
	require.True(t, ok)
	require.Equal(t, []locator.Junction{locator.PalletInstance(7), locator.GeneralIndex(3)}, interior)

	// Wrong prefix, trailing junctions, or a non-index tail all fail.
	_, ok = convert.ClassId([]locator.Junction{locator.PalletInstance(8), locator.GeneralIndex(3)})
	require.False(t, ok)
	_, ok = convert.ClassId([]locator.Junction{locator.PalletInstance(7), locator.GeneralIndex(3), locator.GeneralIndex(4)})
	require.False(t, ok)
	_, ok = convert.ClassId([]locator.Junction{locator.PalletInstance(7), locator.Parachain(3)})
	require.False(t, ok)
	_, ok = convert.ClassId([]locator.Junction{locator.PalletInstance(7)})
	require.False(t, ok)
}

func TestPrefixedGeneralKey(t *testing.T) {
	convert := xnft.PrefixedGeneralKey{Prefix: collections}

	interior, ok := convert.Interior(300)
	require.True(t, ok)
	classId, ok := convert.ClassId(interior)
	require.True(t, ok)
	require.Equal(t, xnft.ClassId(300), classId)

	// Only 8-byte keys carry a class id.
	_, ok = convert.ClassId([]locator.Junction{locator.PalletInstance(7), locator.GeneralKey([]byte{1, 2})})
	require.False(t, ok)
}

func TestIndexInstanceConvert(t *testing.T) {
	convert := xnft.IndexInstanceConvert{}

	id, ok := convert.InstanceId(locator.Index(42))
	require.True(t, ok)
	require.Equal(t, xnft.InstanceId(42), id)

	instance, ok := convert.Instance(42)
	require.True(t, ok)
	require.True(t, instance.Equal(locator.Index(42)))

	_, ok = convert.InstanceId(locator.Undefined())
	require.False(t, ok)
}

func TestArray8InstanceConvert(t *testing.T) {
	convert := xnft.Array8InstanceConvert{}

	instance, ok := convert.Instance(0x0102030405060708)
	require.True(t, ok)
	id, ok := convert.InstanceId(instance)
	require.True(t, ok)
	require.Equal(t, xnft.InstanceId(0x0102030405060708), id)

	_, ok = convert.InstanceId(locator.Index(1))
	require.False(t, ok)
}

func TestArrayInstanceConverts(t *testing.T) {
	a4 := xnft.Array4InstanceConvert{}
	instance, ok := a4.Instance(0x01020304)
	require.True(t, ok)
	id, ok := a4.InstanceId(instance)
	require.True(t, ok)
	require.Equal(t, xnft.InstanceId(0x01020304), id)
	_, ok = a4.Instance(1 << 40)
	require.False(t, ok)

	a16 := xnft.Array16InstanceConvert{}
	instance, ok = a16.Instance(99)
	require.True(t, ok)
	id, ok = a16.InstanceId(instance)
	require.True(t, ok)
	require.Equal(t, xnft.InstanceId(99), id)
	// A nonzero prefix means the value is not a plain id.
	var wide [16]byte
	wide[0] = 1
	_, ok = a16.InstanceId(locator.Array16(wide))
	require.False(t, ok)

	a32 := xnft.Array32InstanceConvert{}
	instance, ok = a32.Instance(99)
	require.True(t, ok)
	id, ok = a32.InstanceId(instance)
	require.True(t, ok)
	require.Equal(t, xnft.InstanceId(99), id)
}

func TestAccountId32Convert(t *testing.T) {
	convert := xnft.AccountId32Convert{}

	got, ok := convert.AccountId(accountLocation(alice))
	require.True(t, ok)
	require.Equal(t, alice, got)

	// Ascending locations and non-account junctions do not convert.
	_, ok = convert.AccountId(locator.NewLocation(1, locator.AccountId32(alice)))
	require.False(t, ok)
	_, ok = convert.AccountId(locator.NewLocation(0, locator.Parachain(9)))
	require.False(t, ok)
	_, ok = convert.AccountId(locator.NewLocation(0, locator.Parachain(9), locator.AccountId32(alice)))
	require.False(t, ok)
}

func TestAccountKey20Convert(t *testing.T) {
	convert := xnft.AccountKey20Convert{}
	key := [20]byte{1, 2, 3}

	got, ok := convert.AccountId(locator.NewLocation(0, locator.AccountKey20(key)))
	require.True(t, ok)
	require.Equal(t, byte(1), got[0])
	require.Equal(t, byte(0), got[20])

	_, ok = convert.AccountId(accountLocation(alice))
	require.False(t, ok)
}

func TestClassAccountDerivation(t *testing.T) {
	a := xnft.ClassAccountOf(vault, 1)
	b := xnft.ClassAccountOf(vault, 2)
	require.NotEqual(t, a, b)
	require.NotEqual(t, vault, a)
	require.Equal(t, a, xnft.ClassAccountOf(vault, 1))
	require.NotEqual(t, a, xnft.ClassAccountOf(alice, 1))
}
