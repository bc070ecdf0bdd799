package repair

// bigramRecordSlot is one arena entry tracked by frequencyIndex: a
// bigram's current frequency, the first position it was seen at, and
// its links within its frequency bucket. Freed slots are zero-valued
// and recycled via the free list before the arena is grown.
type bigramRecordSlot[T comparable] struct {
	bigram                     Bigram[T]
	firstLocation              int
	freq                       int
	prevInBucket, nextInBucket int
}

// frequencyIndex combines a BigramIndex (hash lookup by bigram) and a
// FrequencyQueue (an array of buckets, one per frequency, each a
// doubly-linked list of records) into a single structure, since every
// operation on one immediately needs the other. Bucket i holds the
// handles of all tracked bigrams whose current frequency is exactly i;
// only bigrams with frequency >= 2 are ever tracked. Insertion within a
// bucket always appends at the tail, so among bigrams that reach the
// same frequency, the earliest-inserted one stays at the head and pops
// first, which is what makes compress deterministic.
type frequencyIndex[T comparable] struct {
	arena   []bigramRecordSlot[T]
	free    []int
	index   map[Bigram[T]]int
	buckets []int
	tails   []int
}

func newFrequencyIndex[T comparable](maxFreq int) *frequencyIndex[T] {
	buckets := make([]int, maxFreq+1)
	tails := make([]int, maxFreq+1)
	for i := range buckets {
		buckets[i] = Sentinel
		tails[i] = Sentinel
	}
	return &frequencyIndex[T]{
		index:   make(map[Bigram[T]]int),
		buckets: buckets,
		tails:   tails,
	}
}

func (fi *frequencyIndex[T]) ensureBucket(f int) {
	if f < len(fi.buckets) {
		return
	}
	grownHeads := make([]int, f+1)
	grownTails := make([]int, f+1)
	copy(grownHeads, fi.buckets)
	copy(grownTails, fi.tails)
	for i := len(fi.buckets); i <= f; i++ {
		grownHeads[i] = Sentinel
		grownTails[i] = Sentinel
	}
	fi.buckets = grownHeads
	fi.tails = grownTails
}

func (fi *frequencyIndex[T]) alloc() int {
	if n := len(fi.free); n > 0 {
		h := fi.free[n-1]
		fi.free = fi.free[:n-1]
		return h
	}
	fi.arena = append(fi.arena, bigramRecordSlot[T]{})
	return len(fi.arena) - 1
}

// pushBack appends handle at the tail of bucket f. Appending rather than
// prepending keeps the first-registered record at the head of the
// bucket, which is what makes it the one popMax returns among bigrams
// tied at the same frequency.
func (fi *frequencyIndex[T]) pushBack(f, handle int) {
	fi.ensureBucket(f)
	tail := fi.tails[f]
	fi.arena[handle].prevInBucket = tail
	fi.arena[handle].nextInBucket = Sentinel
	if tail != Sentinel {
		fi.arena[tail].nextInBucket = handle
	} else {
		fi.buckets[f] = handle
	}
	fi.tails[f] = handle
}

func (fi *frequencyIndex[T]) removeFromBucket(handle int) {
	rec := fi.arena[handle]
	if rec.prevInBucket != Sentinel {
		fi.arena[rec.prevInBucket].nextInBucket = rec.nextInBucket
	} else {
		fi.buckets[rec.freq] = rec.nextInBucket
	}
	if rec.nextInBucket != Sentinel {
		fi.arena[rec.nextInBucket].prevInBucket = rec.prevInBucket
	} else {
		fi.tails[rec.freq] = rec.prevInBucket
	}
}

func (fi *frequencyIndex[T]) release(handle int, b Bigram[T]) {
	delete(fi.index, b)
	fi.arena[handle] = bigramRecordSlot[T]{}
	fi.free = append(fi.free, handle)
}

// contains reports whether b currently has a tracked record (frequency
// >= 2).
func (fi *frequencyIndex[T]) contains(b Bigram[T]) bool {
	_, ok := fi.index[b]
	return ok
}

// register starts tracking b at the given frequency and first location.
// Bigrams with frequency below 2 are never worth replacing and are not
// tracked at all.
func (fi *frequencyIndex[T]) register(b Bigram[T], firstLoc, freq int) {
	if freq < 2 {
		return
	}
	h := fi.alloc()
	fi.arena[h] = bigramRecordSlot[T]{bigram: b, firstLocation: firstLoc, freq: freq}
	fi.pushBack(freq, h)
	fi.index[b] = h
}

// decrement lowers b's tracked frequency by one, because the occurrence
// at removedPos is about to stop being a valid bigram occurrence. If
// removedPos was the record's first location, nextSameBigramPos (the
// removed occurrence's own same-bigram successor) becomes the new first
// location. Dropping below frequency 2 stops tracking b entirely. A call
// for an untracked bigram is a no-op: the bigram's frequency was already
// below 2 and nothing was registered for it.
func (fi *frequencyIndex[T]) decrement(b Bigram[T], removedPos, nextSameBigramPos int) {
	h, ok := fi.index[b]
	if !ok {
		return
	}
	fi.removeFromBucket(h)
	rec := &fi.arena[h]
	if rec.firstLocation == removedPos {
		rec.firstLocation = nextSameBigramPos
	}
	rec.freq--
	if rec.freq < 2 {
		fi.release(h, b)
		return
	}
	fi.pushBack(rec.freq, h)
}

// bucketEmpty reports whether no bigram currently has frequency f.
func (fi *frequencyIndex[T]) bucketEmpty(f int) bool {
	if f < 0 || f >= len(fi.buckets) {
		return true
	}
	return fi.buckets[f] == Sentinel
}

// popMax removes and returns the earliest-registered bigram in bucket f
// (the bucket's head), along with its first location and frequency.
// Callers must have already established that bucket f is non-empty.
func (fi *frequencyIndex[T]) popMax(f int) (bigram Bigram[T], firstLocation, freq int) {
	h := fi.buckets[f]
	if h == Sentinel {
		panic("repair: popMax called on an empty frequency bucket")
	}
	rec := fi.arena[h]
	fi.removeFromBucket(h)
	fi.release(h, rec.bigram)
	return rec.bigram, rec.firstLocation, rec.freq
}
