package locator

import (
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v3/scale"
)

// NetworkId identifies a consensus system at the top of the addressing tree.
type NetworkId uint32

// JunctionKind tags the variant carried by a Junction.
type JunctionKind uint8

const (
	GlobalConsensusJunction JunctionKind = iota
	ParachainJunction
	PalletInstanceJunction
	GeneralIndexJunction
	GeneralKeyJunction
	AccountId32Junction
	AccountKey20Junction
)

// Junction is a single step in a location path. It is a tagged value:
// Kind selects the variant, Index carries numeric payloads and
// Key/KeyLen carry byte payloads. The zero Key bytes beyond KeyLen
// must stay zero so that junctions compare equal by value.
type Junction struct {
	Kind   JunctionKind
	Index  uint64
	Key    [32]byte
	KeyLen uint8
}

func GlobalConsensus(network NetworkId) Junction {
	return Junction{Kind: GlobalConsensusJunction, Index: uint64(network)}
}

func Parachain(id uint32) Junction {
	return Junction{Kind: ParachainJunction, Index: uint64(id)}
}

func PalletInstance(index uint8) Junction {
	return Junction{Kind: PalletInstanceJunction, Index: uint64(index)}
}

func GeneralIndex(index uint64) Junction {
	return Junction{Kind: GeneralIndexJunction, Index: index}
}

// GeneralKey builds a keyed junction from at most 32 bytes of data.
// Longer input is truncated to the 32-byte key width.
func GeneralKey(data []byte) Junction {
	if len(data) > 32 {
		data = data[:32]
	}
	j := Junction{Kind: GeneralKeyJunction, KeyLen: uint8(len(data))}
	copy(j.Key[:], data)
	return j
}

func AccountId32(id [32]byte) Junction {
	return Junction{Kind: AccountId32Junction, Key: id, KeyLen: 32}
}

func AccountKey20(key [20]byte) Junction {
	j := Junction{Kind: AccountKey20Junction, KeyLen: 20}
	copy(j.Key[:], key[:])
	return j
}

func (j Junction) Equal(other Junction) bool {
	return j == other
}

func (j Junction) String() string {
	switch j.Kind {
	case GlobalConsensusJunction:
		return fmt.Sprintf("GlobalConsensus(%d)", j.Index)
	case ParachainJunction:
		return fmt.Sprintf("Parachain(%d)", j.Index)
	case PalletInstanceJunction:
		return fmt.Sprintf("PalletInstance(%d)", j.Index)
	case GeneralIndexJunction:
		return fmt.Sprintf("GeneralIndex(%d)", j.Index)
	case GeneralKeyJunction:
		return fmt.Sprintf("GeneralKey(0x%x)", j.Key[:j.KeyLen])
	case AccountId32Junction:
		return fmt.Sprintf("AccountId32(0x%x)", j.Key)
	case AccountKey20Junction:
		return fmt.Sprintf("AccountKey20(0x%x)", j.Key[:20])
	default:
		return fmt.Sprintf("Junction(%d)", j.Kind)
	}
}

func (j Junction) Encode(encoder scale.Encoder) error {
	if err := encoder.PushByte(byte(j.Kind)); err != nil {
		return err
	}

	switch j.Kind {
	case GlobalConsensusJunction, ParachainJunction, PalletInstanceJunction, GeneralIndexJunction:
		return encoder.Encode(j.Index)
	case GeneralKeyJunction, AccountId32Junction, AccountKey20Junction:
		if err := encoder.PushByte(j.KeyLen); err != nil {
			return err
		}
		return encoder.Write(j.Key[:])
	default:
		return fmt.Errorf("unknown junction kind %d", j.Kind)
	}
}

func (j *Junction) Decode(decoder scale.Decoder) error {
	kind, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}
	j.Kind = JunctionKind(kind)

	switch j.Kind {
	case GlobalConsensusJunction, ParachainJunction, PalletInstanceJunction, GeneralIndexJunction:
		return decoder.Decode(&j.Index)
	case GeneralKeyJunction, AccountId32Junction, AccountKey20Junction:
		keyLen, err := decoder.ReadOneByte()
		if err != nil {
			return err
		}
		if int(keyLen) > len(j.Key) {
			return fmt.Errorf("junction key length %d exceeds %d", keyLen, len(j.Key))
		}
		j.KeyLen = keyLen
		return decoder.Read(j.Key[:])
	default:
		return fmt.Errorf("unknown junction kind %d", kind)
	}
}
