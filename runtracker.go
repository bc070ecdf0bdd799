package repair

// runEntry holds the state a single sequence position carries for the
// maximal same-symbol run it participates in. Only the two endpoints of
// a run ever carry a non-zero length; every other position, including
// interior run members, has length 0 and otherEnd Sentinel.
type runEntry struct {
	length   int
	isBegin  bool
	otherEnd int
}

// runTracker tracks maximal runs of equal adjacent symbols. It exists to
// answer, in O(1), the parity question the replacement loop needs when a
// bigram boundary sits at the edge of a same-symbol run: whether the
// occurrence about to be consumed was itself counted in that run's
// bigram frequency, which depends on the run's length and the position's
// distance from its nearer endpoint by way of run_length's parity.
type runTracker[T comparable] struct {
	entries []runEntry
}

func newRunTracker[T comparable](seq *sequenceList[T]) *runTracker[T] {
	n := len(seq.rec)
	rt := &runTracker[T]{entries: make([]runEntry, n)}
	for i := range rt.entries {
		rt.entries[i] = runEntry{otherEnd: Sentinel}
	}
	i := 0
	for i < n {
		j := i
		for j+1 < n && seq.rec[j+1].symbol == seq.rec[i].symbol {
			j++
		}
		if j > i {
			length := j - i + 1
			rt.entries[i] = runEntry{length: length, isBegin: true, otherEnd: j}
			rt.entries[j] = runEntry{length: length, isBegin: false, otherEnd: i}
		}
		i = j + 1
	}
	return rt
}

func (rt *runTracker[T]) IsRunBegin(p int) bool {
	e := rt.entries[p]
	return e.length > 0 && e.isBegin
}

func (rt *runTracker[T]) IsRunEnd(p int) bool {
	e := rt.entries[p]
	return e.length > 0 && !e.isBegin
}

func (rt *runTracker[T]) OtherEnd(p int) int { return rt.entries[p].otherEnd }
func (rt *runTracker[T]) RunLength(p int) int { return rt.entries[p].length }

// Delete discards all state for the run containing p (a no-op if p
// carries no run state).
func (rt *runTracker[T]) Delete(p int) {
	e := rt.entries[p]
	if e.length == 0 {
		return
	}
	other := e.otherEnd
	rt.entries[p] = runEntry{otherEnd: Sentinel}
	if other != Sentinel {
		rt.entries[other] = runEntry{otherEnd: Sentinel}
	}
}

// Shrink records that posRemoved is leaving its run (its symbol is about
// to change), moving the run's boundary to newEndpoint. If the run would
// drop below length 2 it is discarded entirely instead.
func (rt *runTracker[T]) Shrink(posRemoved, newEndpoint int) {
	e := rt.entries[posRemoved]
	if e.length == 0 {
		return
	}
	other := e.otherEnd
	newLength := e.length - 1
	rt.entries[posRemoved] = runEntry{otherEnd: Sentinel}
	if newLength < 2 {
		rt.entries[other] = runEntry{otherEnd: Sentinel}
		return
	}
	otherIsBegin := rt.entries[other].isBegin
	rt.entries[newEndpoint] = runEntry{length: newLength, isBegin: !otherIsBegin, otherEnd: other}
	rt.entries[other] = runEntry{length: newLength, isBegin: otherIsBegin, otherEnd: newEndpoint}
}

// NoteNewPair records that left and right (right == seq.next(left)) now
// hold equal symbols and were not adjacent before this replacement step.
// It merges with any run already ending at left or starting at right,
// so a run spanning more than two positions is recognized correctly
// even when it's assembled one pair at a time.
func (rt *runTracker[T]) NoteNewPair(seq *sequenceList[T], left, right int) {
	begin, end, length := left, right, 2

	if e := rt.entries[left]; e.length > 0 && !e.isBegin {
		begin = e.otherEnd
		length += e.length - 1
		rt.entries[left] = runEntry{otherEnd: Sentinel}
	}
	if e := rt.entries[right]; e.length > 0 && e.isBegin {
		end = e.otherEnd
		length += e.length - 1
		rt.entries[right] = runEntry{otherEnd: Sentinel}
	}

	rt.entries[begin] = runEntry{length: length, isBegin: true, otherEnd: end}
	rt.entries[end] = runEntry{length: length, isBegin: false, otherEnd: begin}
}
