package locator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var universal = []Junction{GlobalConsensus(1), Parachain(5)}

func TestSimplifyStripsSelfPrefix(t *testing.T) {
	// Fully qualified path to an asset on this system.
	loc := NewLocation(2, GlobalConsensus(1), Parachain(5), PalletInstance(7), GeneralIndex(42))

	simplified := loc.Simplify(universal)
	require.Equal(t, uint8(0), simplified.Parents)
	require.True(t, simplified.Equal(NewLocation(0, PalletInstance(7), GeneralIndex(42))))
}

func TestSimplifyPartialPrefix(t *testing.T) {
	// One ascent cancels against the re-entry into this chain; the
	// remaining hop to a sibling chain stays.
	loc := NewLocation(2, GlobalConsensus(1), Parachain(9), GeneralIndex(3))

	simplified := loc.Simplify(universal)
	require.Equal(t, uint8(1), simplified.Parents)
	require.True(t, simplified.Equal(NewLocation(1, Parachain(9), GeneralIndex(3))))
}

func TestSimplifyForeignUnchanged(t *testing.T) {
	cases := []Location{
		NewLocation(2, GlobalConsensus(2)),
		NewLocation(1, Parachain(9), PalletInstance(5), GeneralIndex(3)),
		NewLocation(0, PalletInstance(7), GeneralIndex(42)),
		Here(),
	}
	for _, loc := range cases {
		require.True(t, loc.Simplify(universal).Equal(loc), "location %s", loc)
	}
}

func TestSimplifyNotEnoughContext(t *testing.T) {
	loc := NewLocation(3, GlobalConsensus(1), Parachain(5))
	require.True(t, loc.Simplify(universal).Equal(loc))
}

func TestSimplifyIdempotent(t *testing.T) {
	cases := []Location{
		NewLocation(2, GlobalConsensus(1), Parachain(5), PalletInstance(7)),
		NewLocation(2, GlobalConsensus(1), Parachain(9)),
		NewLocation(2, GlobalConsensus(2)),
		NewLocation(1, Parachain(5)),
		Here(),
	}
	for _, loc := range cases {
		once := loc.Simplify(universal)
		twice := once.Simplify(universal)
		require.True(t, twice.Equal(once), "location %s", loc)
	}
}

func TestLocationEqual(t *testing.T) {
	a := NewLocation(1, Parachain(9), GeneralIndex(3))
	require.True(t, a.Equal(NewLocation(1, Parachain(9), GeneralIndex(3))))
	require.False(t, a.Equal(NewLocation(2, Parachain(9), GeneralIndex(3))))
	require.False(t, a.Equal(NewLocation(1, Parachain(9))))
	require.False(t, a.Equal(NewLocation(1, Parachain(9), GeneralIndex(4))))
}

func TestGeneralKeyPadding(t *testing.T) {
	a := GeneralKey([]byte{1, 2, 3})
	b := GeneralKey([]byte{1, 2, 3})
	require.True(t, a.Equal(b))
	require.Equal(t, uint8(3), a.KeyLen)
	require.False(t, a.Equal(GeneralKey([]byte{1, 2, 3, 0})))
}

func TestGeneralKeyOversized(t *testing.T) {
	long := make([]byte, 40)
	for i := range long {
		long[i] = byte(i + 1)
	}

	j := GeneralKey(long)
	require.Equal(t, uint8(32), j.KeyLen)
	require.True(t, j.Equal(GeneralKey(long[:32])))
	require.NotPanics(t, func() { _ = j.String() })
}
