package repair

import "testing"

func TestSequenceListInitLinksNeighbours(t *testing.T) {
	s := newSequenceList([]byte("abc"))
	if s.prev(0) != Sentinel {
		t.Fatalf("prev(0) = %d, want Sentinel", s.prev(0))
	}
	if s.next(0) != 1 || s.next(1) != 2 {
		t.Fatalf("next chain broken: next(0)=%d next(1)=%d", s.next(0), s.next(1))
	}
	if s.next(2) != Sentinel {
		t.Fatalf("next(2) = %d, want Sentinel", s.next(2))
	}
}

func TestSequenceListBigramAtPanicsAtEnd(t *testing.T) {
	s := newSequenceList([]byte("a"))
	defer func() {
		if recover() == nil {
			t.Fatal("bigramAt at a position with no right neighbour did not panic")
		}
	}()
	s.bigramAt(0)
}

func TestSequenceListReplacePairWithNonterminal(t *testing.T) {
	s := newSequenceList([]byte("abc"))
	a := NonTerminal[byte](0)
	s.replacePairWithNonterminal(0, a)

	if s.symbolAt(0) != a {
		t.Fatalf("symbolAt(0) = %v, want %v", s.symbolAt(0), a)
	}
	if s.next(0) != 2 {
		t.Fatalf("next(0) = %d, want 2 (position 1 spliced out)", s.next(0))
	}
	if s.prev(2) != 0 {
		t.Fatalf("prev(2) = %d, want 0", s.prev(2))
	}

	var walked []int
	s.walkActive(func(p int) { walked = append(walked, p) })
	if len(walked) != 2 || walked[0] != 0 || walked[1] != 2 {
		t.Fatalf("walkActive = %v, want [0 2]", walked)
	}
}

func TestSequenceListSameBigramChainSplicing(t *testing.T) {
	s := newSequenceList([]byte("aaaa"))
	s.linkSameBigram(0, 1)
	s.linkSameBigram(1, 2)

	a := NonTerminal[byte](0)
	s.replacePairWithNonterminal(0, a)

	// Position 1 was spliced out of both the active list and the chain;
	// position 0's chain pointer should now skip straight to 2.
	if s.rec[0].nextSameBigram != 2 {
		t.Fatalf("rec[0].nextSameBigram = %d, want 2", s.rec[0].nextSameBigram)
	}
	if s.rec[2].prevSameBigram != 0 {
		t.Fatalf("rec[2].prevSameBigram = %d, want 0", s.rec[2].prevSameBigram)
	}
}
