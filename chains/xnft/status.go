package xnft

import (
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v3/scale"
)

// StatusKind tags the lifecycle state of a derivative instance id.
type StatusKind uint8

const (
	// StatusActive: the derivative is backed by the original asset and
	// owned by a user on this system.
	StatusActive StatusKind = iota

	// StatusStashed: the original asset does not back the derivative right
	// now; it is parked in the class's vault sub-account and no user can
	// own it. The id becomes
	// active again when the original asset is deposited into this system.
	StatusStashed

	// StatusNotExists: no derivative was ever minted for the instance.
	StatusNotExists
)

// DerivativeStatus is the per (class, foreign instance) state tracked by
// the status store.
type DerivativeStatus struct {
	Kind StatusKind
	Id   InstanceId
}

func ActiveStatus(id InstanceId) DerivativeStatus {
	return DerivativeStatus{Kind: StatusActive, Id: id}
}

func StashedStatus(id InstanceId) DerivativeStatus {
	return DerivativeStatus{Kind: StatusStashed, Id: id}
}

func NotExistsStatus() DerivativeStatus {
	return DerivativeStatus{Kind: StatusNotExists}
}

// EnsureActive returns the active derivative id. A stashed derivative is
// not withdrawable by a user; a nonexistent one cannot be resolved at all.
func (s DerivativeStatus) EnsureActive() (InstanceId, error) {
	switch s.Kind {
	case StatusActive:
		return s.Id, nil
	case StatusStashed:
		return 0, ErrNoPermission
	default:
		return 0, ErrInstanceConversionFailed
	}
}

func (s DerivativeStatus) String() string {
	switch s.Kind {
	case StatusActive:
		return fmt.Sprintf("Active(%d)", s.Id)
	case StatusStashed:
		return fmt.Sprintf("Stashed(%d)", s.Id)
	default:
		return "NotExists"
	}
}

func (s DerivativeStatus) Encode(encoder scale.Encoder) error {
	if err := encoder.PushByte(byte(s.Kind)); err != nil {
		return err
	}
	if s.Kind == StatusNotExists {
		return nil
	}
	return encoder.Encode(uint64(s.Id))
}

func (s *DerivativeStatus) Decode(decoder scale.Decoder) error {
	kind, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}
	s.Kind = StatusKind(kind)
	if s.Kind == StatusNotExists {
		s.Id = 0
		return nil
	}

	var id uint64
	if err := decoder.Decode(&id); err != nil {
		return err
	}
	s.Id = InstanceId(id)
	return nil
}
