package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainx-org/NftBridge/chains/xnft"
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

func TestMintAndTransfer(t *testing.T) {
	e := NewStandalone(nil, BurnOnWithdraw)

	classId, err := e.CreateClass(vault, nil)
	require.NoError(t, err)

	instanceId, err := e.MintDerivative(classId, alice)
	require.NoError(t, err)

	owner, ok := e.OwnerOf(classId, instanceId)
	require.True(t, ok)
	require.Equal(t, alice, owner)

	require.NoError(t, e.Transfer(classId, instanceId, alice, bob))
	owner, _ = e.OwnerOf(classId, instanceId)
	require.Equal(t, bob, owner)

	// Only the current owner may move the instance.
	require.ErrorIs(t, e.Transfer(classId, instanceId, alice, bob), ErrNoPermission)
}

func TestWithdrawPolicies(t *testing.T) {
	burning := NewStandalone(nil, BurnOnWithdraw)
	classId, _ := burning.CreateClass(vault, nil)
	instanceId, _ := burning.MintDerivative(classId, alice)

	verdict, err := burning.WithdrawDerivative(classId, instanceId, alice)
	require.NoError(t, err)
	require.Equal(t, xnft.Burned, verdict)
	_, ok := burning.OwnerOf(classId, instanceId)
	require.False(t, ok)

	stashing := NewStandalone(nil, StashOnWithdraw)
	classId, _ = stashing.CreateClass(vault, nil)
	instanceId, _ = stashing.MintDerivative(classId, alice)

	verdict, err = stashing.WithdrawDerivative(classId, instanceId, alice)
	require.NoError(t, err)
	require.Equal(t, xnft.Stash, verdict)
	// The instance survives; moving it to the vault is the bridge's job.
	owner, ok := stashing.OwnerOf(classId, instanceId)
	require.True(t, ok)
	require.Equal(t, alice, owner)
}

func TestWithdrawErrors(t *testing.T) {
	e := NewStandalone(nil, BurnOnWithdraw)

	_, err := e.WithdrawDerivative(7, 1, alice)
	require.ErrorIs(t, err, ErrClassNotFound)

	classId, _ := e.CreateClass(vault, nil)
	_, err = e.WithdrawDerivative(classId, 1, alice)
	require.ErrorIs(t, err, ErrInstanceNotFound)

	instanceId, _ := e.MintDerivative(classId, alice)
	_, err = e.WithdrawDerivative(classId, instanceId, bob)
	require.ErrorIs(t, err, ErrNoPermission)
}

func TestSavepointRollback(t *testing.T) {
	e := NewStandalone(nil, BurnOnWithdraw)
	classId, _ := e.CreateClass(vault, nil)
	instanceId, _ := e.MintDerivative(classId, alice)

	sp := e.Savepoint()
	_, err := e.MintDerivative(classId, bob)
	require.NoError(t, err)
	require.NoError(t, e.Transfer(classId, instanceId, alice, bob))

	e.RollbackTo(sp)

	owner, ok := e.OwnerOf(classId, instanceId)
	require.True(t, ok)
	require.Equal(t, alice, owner)
	_, ok = e.OwnerOf(classId, instanceId+1)
	require.False(t, ok)

	// Rolled-back mints must not burn ids.
	next, err := e.MintDerivative(classId, bob)
	require.NoError(t, err)
	require.Equal(t, instanceId+1, next)
}

func TestSavepointRelease(t *testing.T) {
	e := NewStandalone(nil, BurnOnWithdraw)
	classId, _ := e.CreateClass(vault, nil)

	sp := e.Savepoint()
	instanceId, _ := e.MintDerivative(classId, alice)
	e.Release(sp)

	// Release keeps the state and drops the snapshot.
	owner, ok := e.OwnerOf(classId, instanceId)
	require.True(t, ok)
	require.Equal(t, alice, owner)
	require.Empty(t, e.savepoints)
}

func TestErrorConvert(t *testing.T) {
	convert := ErrorConvert{}

	e, ok := convert.Convert(ErrClassNotFound)
	require.True(t, ok)
	require.Equal(t, xnft.AssetNotFound, e.Code)

	e, ok = convert.Convert(ErrNoPermission)
	require.True(t, ok)
	require.Equal(t, xnft.NoPermission, e.Code)

	_, ok = convert.Convert(assertionError{})
	require.False(t, ok)
}

type assertionError struct{}

func (assertionError) Error() string { return "unrelated" }
