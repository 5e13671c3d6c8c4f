package xnft_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainx-org/NftBridge/chains/engine"
	"github.com/chainx-org/NftBridge/chains/locator"
	"github.com/chainx-org/NftBridge/chains/xnft"
	"github.com/chainx-org/NftBridge/shared/storage"
)

// Test runtime: this system sits at consensus 1, parachain 5, and hosts
// its native NFT collections under pallet 7.
var (
	universal   = []locator.Junction{locator.GlobalConsensus(1), locator.Parachain(5)}
	collections = []locator.Junction{locator.PalletInstance(7)}
)

func account(b byte) xnft.AccountId {
	var a xnft.AccountId
	for i := range a {
		a[i] = b
	}
	return a
}

var (
	vault = account(0xFF)
	alice = account(0xA1)
	bob   = account(0xB2)
)

func accountLocation(a xnft.AccountId) locator.Location {
	return locator.NewLocation(0, locator.AccountId32(a))
}

// siblingAsset is a collection on a sibling parachain, as this system
// addresses it.
func siblingAsset() locator.AssetId {
	return locator.ConcreteId(locator.NewLocation(1,
		locator.Parachain(9), locator.PalletInstance(5), locator.GeneralIndex(3)))
}

// foreignConsensusAsset lives under a different consensus root entirely.
func foreignConsensusAsset() locator.AssetId {
	return locator.ConcreteId(locator.NewLocation(2,
		locator.GlobalConsensus(2), locator.Parachain(11), locator.GeneralIndex(1)))
}

func localAsset(classId uint64) locator.AssetId {
	return locator.ConcreteId(locator.NewLocation(0,
		locator.PalletInstance(7), locator.GeneralIndex(classId)))
}

func nft(assetId locator.AssetId, instance locator.AssetInstance) locator.Asset {
	return locator.NonFungibleAsset(assetId, instance)
}

type testBridge struct {
	*xnft.Bridge

	engine   *engine.Standalone
	store    *storage.KV
	recorder *xnft.EventRecorder
}

func newTestBridge(t *testing.T, policy engine.WithdrawalPolicy) *testBridge {
	t.Helper()
	e := engine.NewStandalone(nil, policy)
	return newTestBridgeWith(t, e, e)
}

// newTestBridgeWith lets a test wrap the standalone engine while keeping
// direct access to it for assertions.
func newTestBridgeWith(t *testing.T, wrapped xnft.NftEngine, inner *engine.Standalone) *testBridge {
	t.Helper()

	store := storage.NewKV()
	recorder := &xnft.EventRecorder{}
	bridge := xnft.NewBridge(xnft.BridgeConfig{
		Universal:       universal,
		Vault:           vault,
		Engine:          wrapped,
		Store:           store,
		ClassConvert:    xnft.PrefixedGeneralIndex{Prefix: collections},
		InstanceConvert: xnft.IndexInstanceConvert{},
		AccountConvert:  xnft.AccountId32Convert{},
		RegisterOrigin:  xnft.EnsureRoot{},
		Errors:          []xnft.DispatchErrorConvert{engine.ErrorConvert{}},
		Events:          recorder,
	})
	return &testBridge{Bridge: bridge, engine: inner, store: store, recorder: recorder}
}

func (b *testBridge) register(t *testing.T, assetId locator.AssetId) xnft.ClassId {
	t.Helper()
	classId, err := b.RegisterForeignAsset(xnft.RootOrigin(), locator.Versioned(assetId), nil)
	require.NoError(t, err)
	return classId
}
