package ninep

import "math/rand"

// A fid is the client-local record of an open server file: the 32-bit
// identifier sent on the wire, the last qid observed for it, the
// client-tracked byte offset used for sequential Read/Write, and the
// iounit negotiated by the last Open/Create.
type fid struct {
	num    uint32
	qid    Qid
	off    uint64
	iounit uint32
}

// A Fid is a client handle to an open file on a 9P server, returned by
// Attach and Walk and consumed by every other verb.
type Fid struct {
	num uint32
}

// Num returns the 32-bit wire value of a Fid.
func (f Fid) Num() uint32 { return f.num }

// fidTable is a fixed-capacity, open-addressed hash table of live
// fids, keyed by fid number modulo the table's capacity and resolved
// with linear probing. A zero fid number marks an empty slot, so fid
// 0 is never a valid live value — this mirrors the fidtbl() function
// in the reference client, which uses the same scheme because
// deletions are rare and the table is sized to the expected working
// set of open files.
type fidTable struct {
	slots []fid
	rng   *rand.Rand
}

func newFidTable(capacity int, rng *rand.Rand) *fidTable {
	if capacity < 1 {
		capacity = maxFidsDefault
	}
	return &fidTable{slots: make([]fid, capacity), rng: rng}
}

func (t *fidTable) hash(num uint32) int {
	return int(num % uint32(len(t.slots)))
}

// add reserves a slot for num, which must be non-zero and not already
// present, and returns a pointer to it. The caller is responsible for
// filling in the qid/off/iounit fields.
func (t *fidTable) add(num uint32) (*fid, error) {
	if num == 0 {
		return nil, newError("fidtable", KindBadFid, nil)
	}
	start := t.hash(num)
	i := start
	for {
		if t.slots[i].num == 0 {
			t.slots[i].num = num
			t.slots[i].qid = Qid{}
			t.slots[i].off = 0
			t.slots[i].iounit = 0
			return &t.slots[i], nil
		}
		i = (i + 1) % len(t.slots)
		if i == start {
			return nil, newError("fidtable", KindTableFull, nil)
		}
	}
}

// get locates the live slot for num, probing from hash(num) across a
// full cycle of the table. Unlike add, it does not stop at the first
// empty slot: del leaves holes behind in a probe chain, so a live
// entry can sit past one, exactly as fidtbl() in the reference client
// scans its whole cycle regardless of holes.
func (t *fidTable) get(num uint32) (*fid, bool) {
	if num == 0 {
		return nil, false
	}
	start := t.hash(num)
	i := start
	for {
		if t.slots[i].num == num {
			return &t.slots[i], true
		}
		i = (i + 1) % len(t.slots)
		if i == start {
			return nil, false
		}
	}
}

// del removes num from the table, refusing to remove RootFid. On
// success, it returns the slot that was freed so the caller can
// inspect its residual fields (e.g. to log the qid being clunked)
// before it is reused. Like get, it scans the full probe cycle rather
// than stopping at the first empty slot, since holes left by earlier
// deletions do not terminate the chain.
func (t *fidTable) del(num uint32) (fid, bool) {
	if num == RootFid {
		return fid{}, false
	}
	start := t.hash(num)
	i := start
	for {
		if t.slots[i].num == num {
			freed := t.slots[i]
			t.slots[i] = fid{}
			return freed, true
		}
		i = (i + 1) % len(t.slots)
		if i == start {
			return fid{}, false
		}
	}
}

// clearRoot directly zeroes RootFid's slot, bypassing del's refusal to
// remove it. It exists only for Attach to roll back its own
// reservation of RootFid when a later step of the attach fails, the
// same way _9pattach in the reference client rolls back with a direct
// `fid->fid = 0` assignment instead of going through fidtbl's DEL
// operation, which refuses root unconditionally.
func (t *fidTable) clearRoot() {
	start := t.hash(RootFid)
	i := start
	for {
		if t.slots[i].num == RootFid {
			t.slots[i] = fid{}
			return
		}
		i = (i + 1) % len(t.slots)
		if i == start {
			return
		}
	}
}

// newFid draws a fresh, currently-unused, non-zero fid number and
// reserves a slot for it in one step. Random ids (rather than a
// monotonic counter) avoid leaking information about how many fids a
// client has allocated over its lifetime, and make server bugs around
// fid reuse easier to spot.
func (t *fidTable) newFid() (*fid, error) {
	for i := 0; i < len(t.slots); i++ {
		num := t.rng.Uint32()
		if num == 0 {
			continue
		}
		if _, ok := t.get(num); ok {
			continue
		}
		return t.add(num)
	}
	return nil, newError("fidtable", KindTableFull, nil)
}
