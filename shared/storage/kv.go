// The storage package provides the key-value store backing the bridge
// state. The bridge runs single-threaded, one instruction at a time, so
// the store does no locking of its own; atomicity is provided by the
// savepoint transaction that wraps every top-level operation and discards
// all writes when any step of the operation fails.
package storage

// Reader is a point-lookup view of the store. Both the store itself and
// an open transaction satisfy it.
type Reader interface {
	Get(key []byte) ([]byte, bool)
}

// KV is an in-memory key-value store.
type KV struct {
	data map[string][]byte
}

func NewKV() *KV {
	return &KV{data: make(map[string][]byte)}
}

func (kv *KV) Get(key []byte) ([]byte, bool) {
	v, ok := kv.data[string(key)]
	return v, ok
}

func (kv *KV) Len() int {
	return len(kv.data)
}

// Begin opens a transaction over the store. Writes are buffered in the
// transaction and become visible only on Commit.
func (kv *KV) Begin() *Txn {
	return &Txn{kv: kv, writes: make(map[string]*[]byte)}
}

// Txn buffers writes against a KV. A nil write entry marks a deletion.
type Txn struct {
	kv     *KV
	writes map[string]*[]byte
	done   bool
}

func (t *Txn) Get(key []byte) ([]byte, bool) {
	if w, ok := t.writes[string(key)]; ok {
		if w == nil {
			return nil, false
		}
		return *w, true
	}
	return t.kv.Get(key)
}

func (t *Txn) Has(key []byte) bool {
	_, ok := t.Get(key)
	return ok
}

func (t *Txn) Put(key, value []byte) {
	v := append([]byte(nil), value...)
	t.writes[string(key)] = &v
}

func (t *Txn) Delete(key []byte) {
	t.writes[string(key)] = nil
}

// Commit applies the buffered writes to the store.
func (t *Txn) Commit() {
	if t.done {
		return
	}
	t.done = true
	for k, w := range t.writes {
		if w == nil {
			delete(t.kv.data, k)
		} else {
			t.kv.data[k] = *w
		}
	}
}

// Discard drops the buffered writes, leaving the store untouched.
func (t *Txn) Discard() {
	t.done = true
	t.writes = nil
}

// Participant is implemented by collaborators whose own state must roll
// back together with the store when a bridge operation fails. The asset
// engine is required to implement it: a mint or transfer issued during an
// operation that later errors must be undone by RollbackTo.
type Participant interface {
	// Savepoint marks the participant's current state and returns a handle.
	Savepoint() uint64

	// RollbackTo restores the state captured at the given savepoint.
	RollbackTo(handle uint64)

	// Release drops the savepoint without restoring it, once the
	// operation it guarded has committed.
	Release(handle uint64)
}
