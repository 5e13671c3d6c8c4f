package xnft

import (
	"fmt"

	log "github.com/ChainSafe/log15"

	"github.com/chainx-org/NftBridge/chains/locator"
)

// Instance is a complete local identification of an NFT.
type Instance struct {
	ClassId    ClassId
	InstanceId InstanceId
}

func (i Instance) String() string {
	return fmt.Sprintf("%d/%d", i.ClassId, i.InstanceId)
}

// ForeignInstance is a complete identification of a foreign NFT.
type ForeignInstance struct {
	AssetId  locator.AssetId
	Instance locator.AssetInstance
}

func (f ForeignInstance) String() string {
	return fmt.Sprintf("%s %s", f.AssetId, f.Instance)
}

// CategorizedInstance is the local instance an operation acted on,
// tagged with the foreign instance it derives from when it is not a
// native local asset.
type CategorizedInstance struct {
	Instance Instance
	Foreign  *ForeignInstance
}

func (c CategorizedInstance) IsDerivative() bool {
	return c.Foreign != nil
}

func (c CategorizedInstance) String() string {
	if c.Foreign != nil {
		return fmt.Sprintf("derivative %s of %s", c.Instance, c.Foreign)
	}
	return fmt.Sprintf("local %s", c.Instance)
}

// Event is a domain event emitted by the bridge.
type Event interface {
	Name() string
}

type RegisteredEvent struct {
	ForeignAssetId    locator.AssetId
	DerivativeClassId ClassId
}

func (RegisteredEvent) Name() string { return "ForeignAssetRegistered" }

type DepositedEvent struct {
	Instance CategorizedInstance
	To       AccountId
}

func (DepositedEvent) Name() string { return "Deposited" }

type WithdrawnEvent struct {
	Instance CategorizedInstance
	From     AccountId
}

func (WithdrawnEvent) Name() string { return "Withdrawn" }

type TransferredEvent struct {
	Instance CategorizedInstance
	From     AccountId
	To       AccountId
}

func (TransferredEvent) Name() string { return "Transferred" }

// EventSink receives the events emitted by successful bridge operations.
type EventSink interface {
	Emit(event Event)
}

// LogSink logs every event.
type LogSink struct {
	Log log.Logger
}

func (s LogSink) Emit(event Event) {
	s.Log.Info("bridge event", "event", event.Name(), "detail", fmt.Sprintf("%+v", event))
}

// EventRecorder keeps emitted events in order. Used by tests and by the
// service's recent-events endpoint.
type EventRecorder struct {
	Events []Event
}

func (r *EventRecorder) Emit(event Event) {
	r.Events = append(r.Events, event)
}

// Tail returns up to n most recent events. Out-of-range n is clamped.
func (r *EventRecorder) Tail(n int) []Event {
	if n < 0 {
		n = 0
	}
	if n > len(r.Events) {
		n = len(r.Events)
	}
	return r.Events[len(r.Events)-n:]
}

// MultiSink fans an event out to several sinks.
type MultiSink []EventSink

func (m MultiSink) Emit(event Event) {
	for _, s := range m {
		s.Emit(event)
	}
}
