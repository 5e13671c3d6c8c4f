/*
The xnft package is the derivative lifecycle engine of the bridge.

It classifies incoming asset locators as local or foreign, registers
foreign assets by minting a backing local class, tracks every derivative
instance through the Active / Stashed / NotExists state machine and
implements deposit, withdraw and transfer against that state machine,
delegating custody operations to the injected NFT engine.

The engine runs single-threaded, one instruction at a time. Every
top-level operation is wrapped in a savepoint over the four state tables
and the engine; any error discards all writes of the operation.
*/
package xnft

import (
	log "github.com/ChainSafe/log15"

	"github.com/chainx-org/NftBridge/chains/locator"
	"github.com/chainx-org/NftBridge/metrics"
	"github.com/chainx-org/NftBridge/shared/storage"
)

// BridgeConfig assembles the collaborators of a Bridge.
type BridgeConfig struct {
	Log log.Logger

	// Universal is this system's own interior location viewed from the
	// root of the addressing tree, e.g. [GlobalConsensus(n), Parachain(p)].
	Universal []locator.Junction

	// Vault is the system-owned custody account. It owns derivative
	// classes; stashed derivatives sit in per-class sub-accounts derived
	// from it.
	Vault AccountId

	Engine          NftEngine
	Store           *storage.KV
	ClassConvert    LocalClassIdConvert
	InstanceConvert AssetInstanceConvert
	AccountConvert  LocationToAccountId
	RegisterOrigin  RegisterOrigin

	// Errors is the ordered backend error translation chain; may be empty.
	Errors []DispatchErrorConvert

	// Events receives domain events; nil disables emission.
	Events EventSink

	// Metrics counts operations; nil disables counting.
	Metrics *metrics.BridgeMetrics
}

// Bridge is the derivative lifecycle engine.
type Bridge struct {
	log             log.Logger
	universal       []locator.Junction
	vault           AccountId
	engine          NftEngine
	state           *state
	classConvert    LocalClassIdConvert
	instanceConvert AssetInstanceConvert
	accountConvert  LocationToAccountId
	registerOrigin  RegisterOrigin
	errConvert      *ErrorConverter
	events          EventSink
	metrics         *metrics.BridgeMetrics
}

func NewBridge(cfg BridgeConfig) *Bridge {
	logger := cfg.Log
	if logger == nil {
		logger = log.Root().New("pallet", "xnft")
	}

	return &Bridge{
		log:             logger,
		universal:       cfg.Universal,
		vault:           cfg.Vault,
		engine:          cfg.Engine,
		state:           newState(cfg.Store),
		classConvert:    cfg.ClassConvert,
		instanceConvert: cfg.InstanceConvert,
		accountConvert:  cfg.AccountConvert,
		registerOrigin:  cfg.RegisterOrigin,
		errConvert:      NewErrorConverter(cfg.Errors...),
		events:          cfg.Events,
		metrics:         cfg.Metrics,
	}
}

// Vault returns the system custody account.
func (b *Bridge) Vault() AccountId {
	return b.vault
}

// ClassAccount returns the vault sub-account holding stashed derivatives
// of the given class.
func (b *Bridge) ClassAccount(classId ClassId) AccountId {
	return ClassAccountOf(b.vault, classId)
}

// ForeignAssetToClass resolves a registered foreign asset to its
// derivative class.
func (b *Bridge) ForeignAssetToClass(assetId locator.AssetId) (ClassId, bool) {
	return b.state.foreignToClass(b.state.kv, assetId.Simplify(b.universal))
}

// ClassToForeignAsset resolves a derivative class back to the foreign
// asset backing it.
func (b *Bridge) ClassToForeignAsset(classId ClassId) (locator.AssetId, bool) {
	return b.state.classToForeign(b.state.kv, classId)
}

// DerivativeStatus reads the lifecycle status of a foreign instance
// within a derivative class.
func (b *Bridge) DerivativeStatus(classId ClassId, instance locator.AssetInstance) DerivativeStatus {
	return b.state.derivativeStatus(b.state.kv, classId, instance)
}

// DerivativeToForeignInstance resolves a local derivative instance back
// to the foreign instance it represents.
func (b *Bridge) DerivativeToForeignInstance(classId ClassId, instanceId InstanceId) (locator.AssetInstance, bool) {
	return b.state.derivativeToForeign(b.state.kv, classId, instanceId)
}

// atomically runs fn within a savepoint over the state tables and the
// engine. On error every state write is discarded and the engine is
// rolled back to the savepoint, so no partial state is ever observable.
func (b *Bridge) atomically(fn func(txn *storage.Txn) error) error {
	txn := b.state.kv.Begin()
	sp := b.engine.Savepoint()

	if err := fn(txn); err != nil {
		txn.Discard()
		b.engine.RollbackTo(sp)
		return err
	}

	txn.Commit()
	b.engine.Release(sp)
	return nil
}

func (b *Bridge) emit(event Event) {
	if b.events != nil {
		b.events.Emit(event)
	}
}

func (b *Bridge) countFailure(op string, err error) error {
	if err != nil && b.metrics != nil {
		b.metrics.Failures.WithLabelValues(op).Inc()
	}
	return err
}
