package xnft

import (
	"github.com/chainx-org/NftBridge/chains/locator"
	"github.com/chainx-org/NftBridge/shared/storage"
)

// categorized is the result of resolving an incoming asset locator:
// either a native local instance or a derivative with its current status.
type categorized struct {
	classId ClassId

	// local instance id, valid when foreign is nil. For a local asset
	// the id may point to an instance the engine does not know; the
	// engine call will fail and be translated.
	localId InstanceId

	// foreign is set for derivatives, along with the stored status.
	foreign *ForeignInstance
	status  DerivativeStatus
}

// DepositAsset credits the asset instance to the beneficiary location.
// For a foreign instance this mints a new derivative or reactivates a
// stashed one; a second deposit without an intervening withdrawal fails
// with NotDepositable. For a local instance it releases custody from the
// vault to the beneficiary.
func (b *Bridge) DepositAsset(asset locator.Asset, who locator.Location) error {
	b.log.Trace("deposit_asset", "asset", asset, "who", who)

	to, err := b.accountFor(who)
	if err != nil {
		return b.countFailure("deposit", err)
	}

	err = b.atomically(func(txn *storage.Txn) error {
		instance, err := b.categorize(txn, asset)
		if err != nil {
			return err
		}
		return b.depositInstance(txn, instance, to)
	})
	if err != nil {
		return b.countFailure("deposit", err)
	}

	if b.metrics != nil {
		b.metrics.Deposits.Inc()
	}
	return nil
}

// WithdrawAsset takes the asset instance out of the holder's custody.
// For a derivative the engine decides between burning it, which ends its
// local identity, and stashing it in the vault for a later re-deposit.
// For a local instance custody moves from the holder to the vault.
func (b *Bridge) WithdrawAsset(asset locator.Asset, who locator.Location) error {
	b.log.Trace("withdraw_asset", "asset", asset, "who", who)

	from, err := b.accountFor(who)
	if err != nil {
		return b.countFailure("withdraw", err)
	}

	err = b.atomically(func(txn *storage.Txn) error {
		instance, err := b.categorize(txn, asset)
		if err != nil {
			return err
		}
		return b.withdrawInstance(txn, instance, from)
	})
	if err != nil {
		return b.countFailure("withdraw", err)
	}

	if b.metrics != nil {
		b.metrics.Withdrawals.Inc()
	}
	return nil
}

// TransferAsset moves the asset instance between two accounts on this
// system. A derivative must be Active; its status does not change since
// it stays active under a different owner.
func (b *Bridge) TransferAsset(asset locator.Asset, fromLocation, toLocation locator.Location) error {
	b.log.Trace("transfer_asset", "asset", asset, "from", fromLocation, "to", toLocation)

	from, err := b.accountFor(fromLocation)
	if err != nil {
		return b.countFailure("transfer", err)
	}
	to, err := b.accountFor(toLocation)
	if err != nil {
		return b.countFailure("transfer", err)
	}

	err = b.atomically(func(txn *storage.Txn) error {
		instance, err := b.categorize(txn, asset)
		if err != nil {
			return err
		}
		return b.transferInstance(instance, from, to)
	})
	if err != nil {
		return b.countFailure("transfer", err)
	}

	if b.metrics != nil {
		b.metrics.Transfers.Inc()
	}
	return nil
}

func (b *Bridge) accountFor(location locator.Location) (AccountId, error) {
	account, ok := b.accountConvert.AccountId(location)
	if !ok {
		return AccountId{}, ErrAccountIdConversionFailed
	}
	return account, nil
}

// categorize resolves the asset to either a registered derivative or a
// convertible local instance. The asset must be non-fungible.
func (b *Bridge) categorize(txn *storage.Txn, asset locator.Asset) (categorized, error) {
	if asset.Fun != locator.NonFungible {
		return categorized{}, ErrAssetNotHandled
	}

	simplified := asset.Id.Simplify(b.universal)

	if classId, ok := b.state.foreignToClass(txn, simplified); ok {
		return categorized{
			classId: classId,
			foreign: &ForeignInstance{AssetId: simplified, Instance: asset.Instance},
			status:  b.state.derivativeStatus(txn, classId, asset.Instance),
		}, nil
	}

	if classId, ok := b.localClass(simplified); ok {
		localId, ok := b.instanceConvert.InstanceId(asset.Instance)
		if !ok {
			return categorized{}, ErrInstanceConversionFailed
		}
		return categorized{classId: classId, localId: localId}, nil
	}

	return categorized{}, ErrAssetIdConversionFailed
}

// localClass converts a zero-ascent concrete asset id into a local class.
func (b *Bridge) localClass(assetId locator.AssetId) (ClassId, bool) {
	if assetId.Kind != locator.ConcreteAsset || !assetId.Location.IsLocal() {
		return 0, false
	}
	return b.classConvert.ClassId(assetId.Location.Interior)
}

func (b *Bridge) depositInstance(txn *storage.Txn, instance categorized, to AccountId) error {
	if instance.foreign == nil {
		// The local class is authoritative, no status bookkeeping:
		// deposit releases custody from the vault.
		if err := b.engine.Transfer(instance.classId, instance.localId, b.vault, to); err != nil {
			return b.errConvert.Convert(err)
		}
		b.emit(DepositedEvent{
			Instance: CategorizedInstance{Instance: Instance{instance.classId, instance.localId}},
			To:       to,
		})
		return nil
	}

	var depositedId InstanceId
	switch instance.status.Kind {
	case StatusNotExists:
		id, err := b.engine.MintDerivative(instance.classId, to)
		if err != nil {
			return b.errConvert.Convert(err)
		}
		b.state.insertDerivativeToForeign(txn, instance.classId, id, instance.foreign.Instance)
		b.state.setDerivativeStatus(txn, instance.classId, instance.foreign.Instance, ActiveStatus(id))
		depositedId = id

	case StatusStashed:
		stashedId := instance.status.Id
		if err := b.engine.Transfer(instance.classId, stashedId, b.ClassAccount(instance.classId), to); err != nil {
			return b.errConvert.Convert(err)
		}
		b.state.setDerivativeStatus(txn, instance.classId, instance.foreign.Instance, ActiveStatus(stashedId))
		depositedId = stashedId

	case StatusActive:
		// The derivative already exists on this system; crediting it
		// again would double it.
		return ErrNotDepositable
	}

	b.emit(DepositedEvent{
		Instance: CategorizedInstance{
			Instance: Instance{instance.classId, depositedId},
			Foreign:  instance.foreign,
		},
		To: to,
	})
	return nil
}

func (b *Bridge) withdrawInstance(txn *storage.Txn, instance categorized, from AccountId) error {
	if instance.foreign == nil {
		// Local withdrawal takes the instance into vault custody.
		if err := b.engine.Transfer(instance.classId, instance.localId, from, b.vault); err != nil {
			return b.errConvert.Convert(err)
		}
		b.emit(WithdrawnEvent{
			Instance: CategorizedInstance{Instance: Instance{instance.classId, instance.localId}},
			From:     from,
		})
		return nil
	}

	derivativeId, err := instance.status.EnsureActive()
	if err != nil {
		return err
	}

	withdrawal, err := b.engine.WithdrawDerivative(instance.classId, derivativeId, from)
	if err != nil {
		return b.errConvert.Convert(err)
	}

	switch withdrawal {
	case Burned:
		b.state.removeDerivativeToForeign(txn, instance.classId, derivativeId)
		b.state.removeDerivativeStatus(txn, instance.classId, instance.foreign.Instance)

	case Stash:
		if err := b.engine.Transfer(instance.classId, derivativeId, from, b.ClassAccount(instance.classId)); err != nil {
			return b.errConvert.Convert(err)
		}
		b.state.setDerivativeStatus(txn, instance.classId, instance.foreign.Instance, StashedStatus(derivativeId))
	}

	b.emit(WithdrawnEvent{
		Instance: CategorizedInstance{
			Instance: Instance{instance.classId, derivativeId},
			Foreign:  instance.foreign,
		},
		From: from,
	})
	return nil
}

func (b *Bridge) transferInstance(instance categorized, from, to AccountId) error {
	instanceId := instance.localId
	if instance.foreign != nil {
		id, err := instance.status.EnsureActive()
		if err != nil {
			return err
		}
		instanceId = id
	}

	if err := b.engine.Transfer(instance.classId, instanceId, from, to); err != nil {
		return b.errConvert.Convert(err)
	}

	b.emit(TransferredEvent{
		Instance: CategorizedInstance{
			Instance: Instance{instance.classId, instanceId},
			Foreign:  instance.foreign,
		},
		From: from,
		To:   to,
	})
	return nil
}
