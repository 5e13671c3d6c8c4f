package xnft_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainx-org/NftBridge/chains/engine"
	"github.com/chainx-org/NftBridge/chains/xnft"
)

func TestErrorConverterChain(t *testing.T) {
	converter := xnft.NewErrorConverter(engine.ErrorConvert{})

	require.Nil(t, converter.Convert(nil))

	// Bridge errors pass through untouched.
	require.Same(t, xnft.ErrNotDepositable, converter.Convert(xnft.ErrNotDepositable))

	// Known engine errors get their specific translation.
	e := converter.Convert(engine.ErrClassNotFound)
	require.Equal(t, xnft.AssetNotFound, e.Code)
	e = converter.Convert(engine.ErrNoPermission)
	require.Equal(t, xnft.NoPermission, e.Code)

	// Everything else falls back to the generic code with the original
	// message preserved.
	e = converter.Convert(errors.New("disk on fire"))
	require.Equal(t, xnft.FailedToTransactAsset, e.Code)
	require.Contains(t, e.Error(), "disk on fire")
}

func TestErrorIsMatchesByCode(t *testing.T) {
	carried := &xnft.Error{Code: xnft.NoPermission, Msg: "stashed derivative"}
	require.ErrorIs(t, carried, xnft.ErrNoPermission)
	require.NotErrorIs(t, carried, xnft.ErrNotDepositable)
	require.NotErrorIs(t, errors.New("NoPermission"), xnft.ErrNoPermission)
}

func TestEnsureActive(t *testing.T) {
	id, err := xnft.ActiveStatus(7).EnsureActive()
	require.NoError(t, err)
	require.Equal(t, xnft.InstanceId(7), id)

	_, err = xnft.StashedStatus(7).EnsureActive()
	require.ErrorIs(t, err, xnft.ErrNoPermission)

	_, err = xnft.NotExistsStatus().EnsureActive()
	require.ErrorIs(t, err, xnft.ErrInstanceConversionFailed)
}
