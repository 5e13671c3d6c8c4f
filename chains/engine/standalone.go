/*
The engine package provides a standalone in-memory NFT engine. It backs
the bridge binary and the test suites; a production deployment would
replace it with an adapter over the host system's NFT solution.
*/
package engine

import (
	"errors"

	log "github.com/ChainSafe/log15"

	"github.com/chainx-org/NftBridge/chains/xnft"
)

// Engine-level errors, translated into bridge errors by ErrorConvert.
var (
	ErrClassNotFound    = errors.New("nft engine: class not found")
	ErrInstanceNotFound = errors.New("nft engine: instance not found")
	ErrNoPermission     = errors.New("nft engine: account does not own the instance")
)

// WithdrawalPolicy decides what WithdrawDerivative does with a
// derivative. The verdict must be deterministic at call time.
type WithdrawalPolicy uint8

const (
	// BurnOnWithdraw destroys the derivative on withdrawal.
	BurnOnWithdraw WithdrawalPolicy = iota

	// StashOnWithdraw keeps the derivative for the next deposit.
	StashOnWithdraw
)

type class struct {
	owner  xnft.AccountId
	data   xnft.ClassInitData
	next   xnft.InstanceId
	owners map[xnft.InstanceId]xnft.AccountId
}

func (c *class) clone() *class {
	owners := make(map[xnft.InstanceId]xnft.AccountId, len(c.owners))
	for id, owner := range c.owners {
		owners[id] = owner
	}
	return &class{owner: c.owner, data: c.data, next: c.next, owners: owners}
}

// Standalone is an in-memory NFT engine with savepoint support.
type Standalone struct {
	log        log.Logger
	policy     WithdrawalPolicy
	nextClass  xnft.ClassId
	classes    map[xnft.ClassId]*class
	savepoints []snapshot
}

type snapshot struct {
	nextClass xnft.ClassId
	classes   map[xnft.ClassId]*class
}

func NewStandalone(logger log.Logger, policy WithdrawalPolicy) *Standalone {
	if logger == nil {
		logger = log.Root().New("engine", "standalone")
	}
	return &Standalone{
		log:       logger,
		policy:    policy,
		nextClass: 1,
		classes:   make(map[xnft.ClassId]*class),
	}
}

func (e *Standalone) snapshot() snapshot {
	classes := make(map[xnft.ClassId]*class, len(e.classes))
	for id, c := range e.classes {
		classes[id] = c.clone()
	}
	return snapshot{nextClass: e.nextClass, classes: classes}
}

// Savepoint implements storage.Participant.
func (e *Standalone) Savepoint() uint64 {
	e.savepoints = append(e.savepoints, e.snapshot())
	return uint64(len(e.savepoints) - 1)
}

// RollbackTo implements storage.Participant.
func (e *Standalone) RollbackTo(handle uint64) {
	if handle >= uint64(len(e.savepoints)) {
		return
	}
	s := e.savepoints[handle]
	e.nextClass = s.nextClass
	e.classes = s.classes
	e.savepoints = e.savepoints[:handle]
}

// Release implements storage.Participant.
func (e *Standalone) Release(handle uint64) {
	if handle < uint64(len(e.savepoints)) {
		e.savepoints = e.savepoints[:handle]
	}
}

func (e *Standalone) CreateClass(owner xnft.AccountId, data xnft.ClassInitData) (xnft.ClassId, error) {
	id := e.nextClass
	e.nextClass++
	e.classes[id] = &class{
		owner:  owner,
		data:   data,
		next:   1,
		owners: make(map[xnft.InstanceId]xnft.AccountId),
	}
	e.log.Debug("class created", "class", id, "owner", owner)
	return id, nil
}

func (e *Standalone) MintDerivative(classId xnft.ClassId, to xnft.AccountId) (xnft.InstanceId, error) {
	c, ok := e.classes[classId]
	if !ok {
		return 0, ErrClassNotFound
	}
	id := c.next
	c.next++
	c.owners[id] = to
	e.log.Debug("derivative minted", "class", classId, "instance", id, "to", to)
	return id, nil
}

func (e *Standalone) WithdrawDerivative(classId xnft.ClassId, instanceId xnft.InstanceId, from xnft.AccountId) (xnft.DerivativeWithdrawal, error) {
	c, ok := e.classes[classId]
	if !ok {
		return 0, ErrClassNotFound
	}
	owner, ok := c.owners[instanceId]
	if !ok {
		return 0, ErrInstanceNotFound
	}
	if owner != from {
		return 0, ErrNoPermission
	}

	if e.policy == StashOnWithdraw {
		// The bridge moves the instance into the vault itself.
		return xnft.Stash, nil
	}

	delete(c.owners, instanceId)
	e.log.Debug("derivative burned", "class", classId, "instance", instanceId)
	return xnft.Burned, nil
}

func (e *Standalone) Transfer(classId xnft.ClassId, instanceId xnft.InstanceId, from, to xnft.AccountId) error {
	c, ok := e.classes[classId]
	if !ok {
		return ErrClassNotFound
	}
	owner, ok := c.owners[instanceId]
	if !ok {
		return ErrInstanceNotFound
	}
	if owner != from {
		return ErrNoPermission
	}
	c.owners[instanceId] = to
	return nil
}

// OwnerOf reports the current owner of an instance.
func (e *Standalone) OwnerOf(classId xnft.ClassId, instanceId xnft.InstanceId) (xnft.AccountId, bool) {
	c, ok := e.classes[classId]
	if !ok {
		return xnft.AccountId{}, false
	}
	owner, ok := c.owners[instanceId]
	return owner, ok
}

// MintLocal mints an instance in an existing class directly, bypassing
// the bridge. Used to seed local assets.
func (e *Standalone) MintLocal(classId xnft.ClassId, to xnft.AccountId) (xnft.InstanceId, error) {
	return e.MintDerivative(classId, to)
}

// ErrorConvert translates engine errors into bridge errors.
type ErrorConvert struct{}

func (ErrorConvert) Convert(err error) (*xnft.Error, bool) {
	switch {
	case errors.Is(err, ErrClassNotFound), errors.Is(err, ErrInstanceNotFound):
		return xnft.ErrAssetNotFound, true
	case errors.Is(err, ErrNoPermission):
		return xnft.ErrNoPermission, true
	default:
		return nil, false
	}
}
