package xnft

import (
	"bytes"

	"github.com/centrifuge/go-substrate-rpc-client/v3/scale"
	"github.com/centrifuge/go-substrate-rpc-client/v3/types"

	"github.com/chainx-org/NftBridge/chains/locator"
	"github.com/chainx-org/NftBridge/shared/storage"
)

// Table prefixes for the four logical maps. All keys are point lookups;
// the key tail is the SCALE encoding of the map key components.
const (
	tableForeignAssetToClass byte = iota
	tableClassToForeignAsset
	tableForeignInstanceToStatus
	tableDerivativeToForeignInstance
)

type state struct {
	kv *storage.KV
}

func newState(kv *storage.KV) *state {
	return &state{kv: kv}
}

func stateKey(table byte, parts ...interface{}) []byte {
	var buf bytes.Buffer
	encoder := scale.NewEncoder(&buf)
	_ = encoder.PushByte(table)
	for _, part := range parts {
		_ = encoder.Encode(part)
	}
	return buf.Bytes()
}

func mustEncode(value interface{}) []byte {
	b, err := types.EncodeToBytes(value)
	if err != nil {
		panic(err)
	}
	return b
}

func (s *state) foreignToClass(r storage.Reader, assetId locator.AssetId) (ClassId, bool) {
	raw, ok := r.Get(stateKey(tableForeignAssetToClass, assetId))
	if !ok {
		return 0, false
	}
	var id uint64
	if err := types.DecodeFromBytes(raw, &id); err != nil {
		return 0, false
	}
	return ClassId(id), true
}

func (s *state) classToForeign(r storage.Reader, classId ClassId) (locator.AssetId, bool) {
	raw, ok := r.Get(stateKey(tableClassToForeignAsset, uint64(classId)))
	if !ok {
		return locator.AssetId{}, false
	}
	var assetId locator.AssetId
	if err := types.DecodeFromBytes(raw, &assetId); err != nil {
		return locator.AssetId{}, false
	}
	return assetId, true
}

// insertRegistry writes both registry directions in one logical step;
// neither direction ever exists without the other.
func (s *state) insertRegistry(t *storage.Txn, assetId locator.AssetId, classId ClassId) {
	t.Put(stateKey(tableForeignAssetToClass, assetId), mustEncode(uint64(classId)))
	t.Put(stateKey(tableClassToForeignAsset, uint64(classId)), mustEncode(assetId))
}

func (s *state) derivativeStatus(r storage.Reader, classId ClassId, instance locator.AssetInstance) DerivativeStatus {
	raw, ok := r.Get(stateKey(tableForeignInstanceToStatus, uint64(classId), instance))
	if !ok {
		return NotExistsStatus()
	}
	var status DerivativeStatus
	if err := types.DecodeFromBytes(raw, &status); err != nil {
		return NotExistsStatus()
	}
	return status
}

func (s *state) setDerivativeStatus(t *storage.Txn, classId ClassId, instance locator.AssetInstance, status DerivativeStatus) {
	t.Put(stateKey(tableForeignInstanceToStatus, uint64(classId), instance), mustEncode(status))
}

func (s *state) removeDerivativeStatus(t *storage.Txn, classId ClassId, instance locator.AssetInstance) {
	t.Delete(stateKey(tableForeignInstanceToStatus, uint64(classId), instance))
}

func (s *state) derivativeToForeign(r storage.Reader, classId ClassId, instanceId InstanceId) (locator.AssetInstance, bool) {
	raw, ok := r.Get(stateKey(tableDerivativeToForeignInstance, uint64(classId), uint64(instanceId)))
	if !ok {
		return locator.AssetInstance{}, false
	}
	var instance locator.AssetInstance
	if err := types.DecodeFromBytes(raw, &instance); err != nil {
		return locator.AssetInstance{}, false
	}
	return instance, true
}

func (s *state) insertDerivativeToForeign(t *storage.Txn, classId ClassId, instanceId InstanceId, instance locator.AssetInstance) {
	t.Put(stateKey(tableDerivativeToForeignInstance, uint64(classId), uint64(instanceId)), mustEncode(instance))
}

func (s *state) removeDerivativeToForeign(t *storage.Txn, classId ClassId, instanceId InstanceId) {
	t.Delete(stateKey(tableDerivativeToForeignInstance, uint64(classId), uint64(instanceId)))
}
