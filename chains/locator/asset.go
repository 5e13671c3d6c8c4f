package locator

import (
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v3/scale"
)

// LatestVersion is the locator format version this engine understands.
const LatestVersion uint32 = 3

// AssetIdKind tags the variant carried by an AssetId.
type AssetIdKind uint8

const (
	// ConcreteAsset identifies an asset class by its reserve location.
	ConcreteAsset AssetIdKind = iota

	// AbstractAsset identifies an asset class by an opaque 32-byte name.
	AbstractAsset
)

// AssetId identifies an asset class either by a concrete reserve location
// or by an abstract name.
type AssetId struct {
	Kind     AssetIdKind
	Location Location
	Name     [32]byte
}

func ConcreteId(location Location) AssetId {
	return AssetId{Kind: ConcreteAsset, Location: location}
}

func AbstractId(name [32]byte) AssetId {
	return AssetId{Kind: AbstractAsset, Name: name}
}

func (a AssetId) Equal(other AssetId) bool {
	if a.Kind != other.Kind {
		return false
	}
	if a.Kind == ConcreteAsset {
		return a.Location.Equal(other.Location)
	}
	return a.Name == other.Name
}

// Simplify rewrites a concrete asset id's reserve location relative to
// the given universal context. Abstract ids are returned unchanged.
func (a AssetId) Simplify(context []Junction) AssetId {
	if a.Kind != ConcreteAsset {
		return a
	}
	return ConcreteId(a.Location.Simplify(context))
}

func (a AssetId) String() string {
	if a.Kind == ConcreteAsset {
		return a.Location.String()
	}
	return fmt.Sprintf("Abstract(0x%x)", a.Name)
}

func (a AssetId) Encode(encoder scale.Encoder) error {
	if err := encoder.PushByte(byte(a.Kind)); err != nil {
		return err
	}
	if a.Kind == ConcreteAsset {
		return encoder.Encode(a.Location)
	}
	return encoder.Write(a.Name[:])
}

func (a *AssetId) Decode(decoder scale.Decoder) error {
	kind, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}
	a.Kind = AssetIdKind(kind)

	switch a.Kind {
	case ConcreteAsset:
		return decoder.Decode(&a.Location)
	case AbstractAsset:
		return decoder.Read(a.Name[:])
	default:
		return fmt.Errorf("unknown asset id kind %d", kind)
	}
}

// VersionedAssetId wraps an AssetId together with its format version.
// Callers submit versioned ids; the engine only accepts LatestVersion.
type VersionedAssetId struct {
	Version uint32
	Id      AssetId
}

func Versioned(id AssetId) VersionedAssetId {
	return VersionedAssetId{Version: LatestVersion, Id: id}
}

// Latest unwraps the id, failing when the version is not the supported one.
func (v VersionedAssetId) Latest() (AssetId, bool) {
	if v.Version != LatestVersion {
		return AssetId{}, false
	}
	return v.Id, true
}
