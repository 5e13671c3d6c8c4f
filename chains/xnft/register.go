package xnft

import (
	"github.com/chainx-org/NftBridge/chains/locator"
	"github.com/chainx-org/NftBridge/shared/storage"
)

// RegisterForeignAsset registers a foreign non-fungible asset, creating
// a derivative class on this system backed by the asset identified by
// the versioned locator. The class is owned by the vault account and
// classInitData is handed through to the engine opaquely.
//
// Checks run in order, first failure wins, and no state is mutated on
// failure: BadAssetId, AttemptToRegisterLocalAsset, BadOrigin,
// AssetAlreadyRegistered.
func (b *Bridge) RegisterForeignAsset(origin Origin, versioned locator.VersionedAssetId, data ClassInitData) (ClassId, error) {
	b.log.Trace("register_foreign_asset", "asset", versioned.Id, "version", versioned.Version)

	var classId ClassId
	err := b.atomically(func(txn *storage.Txn) error {
		foreignAsset, err := b.registrationChecks(txn, origin, versioned)
		if err != nil {
			return err
		}

		classId, err = b.engine.CreateClass(b.vault, data)
		if err != nil {
			return err
		}

		b.state.insertRegistry(txn, foreignAsset, classId)

		b.log.Info("foreign asset registered", "asset", foreignAsset, "class", classId)
		b.emit(RegisteredEvent{ForeignAssetId: foreignAsset, DerivativeClassId: classId})
		return nil
	})
	if err != nil {
		return 0, b.countFailure("register", err)
	}

	if b.metrics != nil {
		b.metrics.Registrations.Inc()
	}
	return classId, nil
}

func (b *Bridge) registrationChecks(txn *storage.Txn, origin Origin, versioned locator.VersionedAssetId) (locator.AssetId, error) {
	assetId, ok := versioned.Latest()
	if !ok {
		return locator.AssetId{}, ErrBadAssetId
	}

	simplified := assetId.Simplify(b.universal)

	if simplified.Kind == locator.ConcreteAsset && simplified.Location.IsLocal() {
		return locator.AssetId{}, ErrAttemptToRegisterLocalAsset
	}

	allowed, err := b.registerOrigin.EnsureOrigin(origin, simplified)
	if err != nil {
		return locator.AssetId{}, ErrBadOrigin
	}
	if !allowed.Any {
		if allowed.Definite == nil || !allowed.Definite.Equal(simplified) {
			return locator.AssetId{}, ErrBadOrigin
		}
	}

	if _, exists := b.state.foreignToClass(txn, simplified); exists {
		return locator.AssetId{}, ErrAssetAlreadyRegistered
	}

	return simplified, nil
}
