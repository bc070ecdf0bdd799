package repair

import "testing"

func TestFrequencyIndexRegisterIgnoresLowFrequency(t *testing.T) {
	fi := newFrequencyIndex[byte](4)
	b := NewBigram(Terminal(byte('a')), Terminal(byte('b')))
	fi.register(b, 0, 1)
	if fi.contains(b) {
		t.Fatal("a bigram with frequency 1 should not be tracked")
	}
}

func TestFrequencyIndexPopMax(t *testing.T) {
	fi := newFrequencyIndex[byte](4)
	ab := NewBigram(Terminal(byte('a')), Terminal(byte('b')))
	cd := NewBigram(Terminal(byte('c')), Terminal(byte('d')))
	fi.register(ab, 0, 3)
	fi.register(cd, 5, 4)

	if fi.bucketEmpty(4) {
		t.Fatal("bucket 4 should hold cd")
	}
	b, loc, freq := fi.popMax(4)
	if b != cd || loc != 5 || freq != 4 {
		t.Fatalf("popMax(4) = (%v, %d, %d), want (%v, 5, 4)", b, loc, freq, cd)
	}
	if fi.contains(cd) {
		t.Fatal("cd should no longer be tracked after popMax")
	}
	if !fi.contains(ab) {
		t.Fatal("ab should remain tracked")
	}
}

func TestFrequencyIndexPopMaxTieBreaksByRegistrationOrder(t *testing.T) {
	fi := newFrequencyIndex[byte](4)
	ab := NewBigram(Terminal(byte('a')), Terminal(byte('b')))
	cd := NewBigram(Terminal(byte('c')), Terminal(byte('d')))
	ef := NewBigram(Terminal(byte('e')), Terminal(byte('f')))
	fi.register(ab, 0, 3)
	fi.register(cd, 5, 3)
	fi.register(ef, 9, 3)

	b, loc, freq := fi.popMax(3)
	if b != ab || loc != 0 || freq != 3 {
		t.Fatalf("popMax(3) = (%v, %d, %d), want the first-registered tie (%v, 0, 3)", b, loc, freq, ab)
	}
	b, loc, freq = fi.popMax(3)
	if b != cd || loc != 5 || freq != 3 {
		t.Fatalf("popMax(3) = (%v, %d, %d), want the second-registered tie (%v, 5, 3)", b, loc, freq, cd)
	}
	b, loc, freq = fi.popMax(3)
	if b != ef || loc != 9 || freq != 3 {
		t.Fatalf("popMax(3) = (%v, %d, %d), want the third-registered tie (%v, 9, 3)", b, loc, freq, ef)
	}
}

func TestFrequencyIndexDecrementRetracksAtLowerBucket(t *testing.T) {
	fi := newFrequencyIndex[byte](4)
	b := NewBigram(Terminal(byte('a')), Terminal(byte('b')))
	fi.register(b, 10, 3)
	fi.decrement(b, 10, 20)

	if fi.bucketEmpty(2) {
		t.Fatal("after decrement from 3 to 2, bucket 2 should hold the bigram")
	}
	got, loc, freq := fi.popMax(2)
	if got != b || freq != 2 || loc != 20 {
		t.Fatalf("popMax(2) = (%v, %d, %d), want (%v, 20, 2)", got, loc, freq, b)
	}
}

func TestFrequencyIndexDecrementBelowTwoStopsTracking(t *testing.T) {
	fi := newFrequencyIndex[byte](4)
	b := NewBigram(Terminal(byte('a')), Terminal(byte('b')))
	fi.register(b, 0, 2)
	fi.decrement(b, 0, Sentinel)
	if fi.contains(b) {
		t.Fatal("bigram should stop being tracked once its frequency drops below 2")
	}
}

func TestFrequencyIndexDecrementOnUntracked(t *testing.T) {
	fi := newFrequencyIndex[byte](4)
	b := NewBigram(Terminal(byte('a')), Terminal(byte('b')))
	// Must be a no-op, not a panic, for a bigram that was never registered.
	fi.decrement(b, 0, 1)
	if fi.contains(b) {
		t.Fatal("decrementing an untracked bigram should not start tracking it")
	}
}

func TestFrequencyIndexPopMaxPanicsOnEmptyBucket(t *testing.T) {
	fi := newFrequencyIndex[byte](4)
	defer func() {
		if recover() == nil {
			t.Fatal("popMax on an empty bucket did not panic")
		}
	}()
	fi.popMax(3)
}
