package xnft

import (
	"github.com/centrifuge/go-substrate-rpc-client/v3/types"

	"github.com/chainx-org/NftBridge/chains/locator"
	"github.com/chainx-org/NftBridge/shared/storage"
)

// AccountId is the account type of the local system.
type AccountId = types.AccountID

// ClassId identifies a local asset class.
type ClassId uint64

// InstanceId identifies an instance within a local asset class.
type InstanceId uint64

// ClassInitData is opaque initialization data handed through to the
// engine when a derivative class is created.
type ClassInitData []byte

// DerivativeWithdrawal is the engine's verdict on a withdrawn derivative.
type DerivativeWithdrawal uint8

const (
	// Burned: the engine destroyed the derivative; its identity ends here.
	Burned DerivativeWithdrawal = iota

	// Stash: the derivative should be parked in vault custody and kept for
	// the next deposit of the same foreign instance.
	Stash
)

// NftEngine is the asset-class backend the bridge delegates custody
// operations to. All four operations participate in the bridge's
// savepoint boundary: when a later step of a bridge operation fails,
// RollbackTo must undo any mint/burn/transfer issued since the savepoint.
// The Burned-vs-Stash verdict of WithdrawDerivative must be deterministic
// in (classId, instanceId, from) at call time.
type NftEngine interface {
	storage.Participant

	// CreateClass creates a new local asset class owned by the given account.
	CreateClass(owner AccountId, data ClassInitData) (ClassId, error)

	// MintDerivative mints a new instance within a derivative class to the
	// given account.
	MintDerivative(classId ClassId, to AccountId) (InstanceId, error)

	// WithdrawDerivative takes a derivative out of the given account and
	// reports whether it was burned or should be stashed.
	WithdrawDerivative(classId ClassId, instanceId InstanceId, from AccountId) (DerivativeWithdrawal, error)

	// Transfer moves any local instance between the two accounts.
	Transfer(classId ClassId, instanceId InstanceId, from, to AccountId) error
}

// LocationToAccountId converts a beneficiary/holder location into a local
// account. Pure; reports false on an unconvertible location.
type LocationToAccountId interface {
	AccountId(location locator.Location) (AccountId, bool)
}

// LocalClassIdConvert converts between the interior path of a local asset
// class and its class id. Pure, bidirectional.
type LocalClassIdConvert interface {
	ClassId(interior []locator.Junction) (ClassId, bool)
	Interior(classId ClassId) ([]locator.Junction, bool)
}

// AssetInstanceConvert converts between an instance locator and a local
// instance id. Pure, bidirectional.
type AssetInstanceConvert interface {
	InstanceId(instance locator.AssetInstance) (InstanceId, bool)
	Instance(id InstanceId) (locator.AssetInstance, bool)
}

// Origin is the authority on whose behalf a registration is dispatched.
type Origin struct {
	Root   bool
	Signed *AccountId
}

func RootOrigin() Origin {
	return Origin{Root: true}
}

func SignedOrigin(account AccountId) Origin {
	return Origin{Signed: &account}
}

// AllowedToRegister is the scope granted by a registration authorizer:
// either any foreign asset, or exactly one definite asset.
type AllowedToRegister struct {
	Any      bool
	Definite *locator.AssetId
}

// RegisterOrigin authorizes foreign asset registration. EnsureOrigin is
// called with the already-normalized asset id and returns the granted
// scope, or an error for an unauthorized origin.
type RegisterOrigin interface {
	EnsureOrigin(origin Origin, assetId locator.AssetId) (AllowedToRegister, error)
}

// EnsureRoot authorizes the root origin to register any foreign asset.
type EnsureRoot struct{}

func (EnsureRoot) EnsureOrigin(origin Origin, _ locator.AssetId) (AllowedToRegister, error) {
	if !origin.Root {
		return AllowedToRegister{}, ErrBadOrigin
	}
	return AllowedToRegister{Any: true}, nil
}
