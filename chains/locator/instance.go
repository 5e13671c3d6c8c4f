package locator

import (
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v3/scale"
)

// InstanceKind tags the encoding variant of an AssetInstance.
type InstanceKind uint8

const (
	UndefinedInstance InstanceKind = iota
	IndexInstance
	Array4Instance
	Array8Instance
	Array16Instance
	Array32Instance
)

func (k InstanceKind) arrayLen() int {
	switch k {
	case Array4Instance:
		return 4
	case Array8Instance:
		return 8
	case Array16Instance:
		return 16
	case Array32Instance:
		return 32
	default:
		return 0
	}
}

// AssetInstance identifies one instance within an asset class. It is a
// tagged value over several fixed-width encodings, treated by this engine
// as an opaque equality-comparable key for foreign instances.
type AssetInstance struct {
	Kind  InstanceKind
	Index uint64
	Array [32]byte
}

func Undefined() AssetInstance {
	return AssetInstance{Kind: UndefinedInstance}
}

func Index(index uint64) AssetInstance {
	return AssetInstance{Kind: IndexInstance, Index: index}
}

func Array4(b [4]byte) AssetInstance {
	i := AssetInstance{Kind: Array4Instance}
	copy(i.Array[:], b[:])
	return i
}

func Array8(b [8]byte) AssetInstance {
	i := AssetInstance{Kind: Array8Instance}
	copy(i.Array[:], b[:])
	return i
}

func Array16(b [16]byte) AssetInstance {
	i := AssetInstance{Kind: Array16Instance}
	copy(i.Array[:], b[:])
	return i
}

func Array32(b [32]byte) AssetInstance {
	return AssetInstance{Kind: Array32Instance, Array: b}
}

func (i AssetInstance) Equal(other AssetInstance) bool {
	return i == other
}

func (i AssetInstance) String() string {
	switch i.Kind {
	case UndefinedInstance:
		return "Undefined"
	case IndexInstance:
		return fmt.Sprintf("Index(%d)", i.Index)
	default:
		return fmt.Sprintf("Array%d(0x%x)", i.Kind.arrayLen(), i.Array[:i.Kind.arrayLen()])
	}
}

func (i AssetInstance) Encode(encoder scale.Encoder) error {
	if err := encoder.PushByte(byte(i.Kind)); err != nil {
		return err
	}
	switch i.Kind {
	case UndefinedInstance:
		return nil
	case IndexInstance:
		return encoder.Encode(i.Index)
	case Array4Instance, Array8Instance, Array16Instance, Array32Instance:
		return encoder.Write(i.Array[:i.Kind.arrayLen()])
	default:
		return fmt.Errorf("unknown asset instance kind %d", i.Kind)
	}
}

func (i *AssetInstance) Decode(decoder scale.Decoder) error {
	kind, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}
	i.Kind = InstanceKind(kind)

	switch i.Kind {
	case UndefinedInstance:
		return nil
	case IndexInstance:
		return decoder.Decode(&i.Index)
	case Array4Instance, Array8Instance, Array16Instance, Array32Instance:
		return decoder.Read(i.Array[:i.Kind.arrayLen()])
	default:
		return fmt.Errorf("unknown asset instance kind %d", kind)
	}
}

// Fungibility distinguishes fungible amounts from non-fungible instances.
type Fungibility uint8

const (
	Fungible Fungibility = iota
	NonFungible
)

// Asset is an asset id paired with either a fungible amount or a
// non-fungible instance.
type Asset struct {
	Id       AssetId
	Fun      Fungibility
	Amount   uint64
	Instance AssetInstance
}

func NonFungibleAsset(id AssetId, instance AssetInstance) Asset {
	return Asset{Id: id, Fun: NonFungible, Instance: instance}
}

func FungibleAsset(id AssetId, amount uint64) Asset {
	return Asset{Id: id, Fun: Fungible, Amount: amount}
}

func (a Asset) String() string {
	if a.Fun == NonFungible {
		return fmt.Sprintf("%s %s", a.Id, a.Instance)
	}
	return fmt.Sprintf("%s x%d", a.Id, a.Amount)
}
