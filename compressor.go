package repair

import "sort"

// Compressor runs the Re-Pair construction over a single input and
// retains the structures the construction needs: the sequence arena, the
// frequency-tracked bigram index, and the run tracker. A Compressor is
// meant for one Compress call; reuse NewCompressor for the next input.
type Compressor[T comparable] struct {
	seq  *sequenceList[T]
	freq *frequencyIndex[T]
	runs *runTracker[T]

	rules      []Rule[T]
	compressed []Symbol[T]
	inputLen   int
	maxF       int
}

// NewCompressor returns a Compressor ready to compress one input.
func NewCompressor[T comparable]() *Compressor[T] {
	return &Compressor[T]{}
}

// Compress runs the grammar construction over input and returns the
// compressed text C and the rule list R, exactly as described by the
// replacement-loop contract: inputs shorter than four symbols are
// returned verbatim with no rules at all, since there is no bigram that
// could occur more than once.
func (c *Compressor[T]) Compress(input []T) ([]Symbol[T], []Rule[T]) {
	c.inputLen = len(input)
	c.rules = nil

	if len(input) < 4 {
		c.compressed = make([]Symbol[T], len(input))
		for i, v := range input {
			c.compressed[i] = Terminal(v)
		}
		return c.compressed, c.rules
	}

	c.initData(input)
	c.compressData()
	c.emit()
	return c.compressed, c.rules
}

// Compress is the one-shot convenience form of Compressor.Compress.
func Compress[T comparable](input []T) ([]Symbol[T], []Rule[T]) {
	return NewCompressor[T]().Compress(input)
}

// Rules returns the rule list produced by the most recent Compress call.
func (c *Compressor[T]) Rules() []Rule[T] { return c.rules }

// CompressedText returns the compressed symbol sequence produced by the
// most recent Compress call.
func (c *Compressor[T]) CompressedText() []Symbol[T] { return c.compressed }

// Stats reports the sizes a caller typically wants to report: the
// original input length, the compressed length, and the rule count.
func (c *Compressor[T]) Stats() (inputSize, compressedSize, ruleCount int) {
	return c.inputLen, len(c.compressed), len(c.rules)
}

// VerifyRoundTrip decompresses the most recent Compress result and
// reports whether it reproduces input exactly. It exists for callers
// that want an equality check without hand-rolling the Decompress call
// themselves, mirroring the original construction's own self-check.
func (c *Compressor[T]) VerifyRoundTrip(input []T) (bool, error) {
	out, err := Decompress(c.compressed, c.rules)
	if err != nil {
		return false, err
	}
	if len(out) != len(input) {
		return false, nil
	}
	for i := range input {
		if out[i] != input[i] {
			return false, nil
		}
	}
	return true, nil
}

// initData builds the sequence arena, the bigram frequency index, and
// the run tracker from the raw input. Bigrams are registered into their
// frequency buckets in input-position order of first occurrence, not
// map-iteration order, so that ties among equally-frequent bigrams are
// always broken the same way across runs.
func (c *Compressor[T]) initData(input []T) {
	c.seq = newSequenceList(input)
	n := len(input)

	order := make([]Bigram[T], 0, n)
	positions := make(map[Bigram[T]][]int)
	for p := 0; p < n-1; p++ {
		b := c.seq.bigramAt(p)
		if _, seen := positions[b]; !seen {
			order = append(order, b)
		}
		positions[b] = append(positions[b], p)
	}

	type pendingBigram struct {
		bigram Bigram[T]
		pos    []int
		freq   int
	}
	pending := make([]pendingBigram, 0, len(order))
	maxFreq := 0
	for _, b := range order {
		pos := positions[b]
		freq := countOccurrences(c.seq, pos)
		if freq > maxFreq {
			maxFreq = freq
		}
		pending = append(pending, pendingBigram{b, pos, freq})
	}

	c.freq = newFrequencyIndex[T](maxFreq)
	for _, pb := range pending {
		for i := 1; i < len(pb.pos); i++ {
			c.seq.linkSameBigram(pb.pos[i-1], pb.pos[i])
		}
		c.freq.register(pb.bigram, pb.pos[0], pb.freq)
	}

	c.maxF = maxFreq
	c.runs = newRunTracker(c.seq)
}

// countOccurrences applies the overlap rule shared by init and the
// replacement loop: two occurrences that share a position (the first
// ends exactly where the second begins) count as one, since replacing
// one consumes the symbol the other would have needed.
func countOccurrences[T comparable](seq *sequenceList[T], pos []int) int {
	freq := 0
	for i := 0; i < len(pos); i++ {
		freq++
		if i+1 < len(pos) && pos[i+1] == seq.rec[pos[i]].next {
			i++
		}
	}
	return freq
}

// compressData is the main replacement loop: repeatedly take the
// most frequent bigram, mint a rule for it, and replace every
// occurrence with the new non-terminal, maintaining the frequency
// index and run tracker incrementally as neighbouring bigrams are
// created and destroyed.
func (c *Compressor[T]) compressData() {
	for {
		for c.maxF >= 2 && c.freq.bucketEmpty(c.maxF) {
			c.maxF--
		}
		if c.maxF < 2 {
			break
		}

		b, firstLoc, freq := c.freq.popMax(c.maxF)
		a := NonTerminal[T](len(c.rules))
		c.rules = append(c.rules, Rule[T]{Left: b.Left, Right: b.Right, Freq: freq, Index: len(c.rules)})

		newPositions := make(map[Bigram[T]][]int)
		var newOrder []Bigram[T]
		push := func(nb Bigram[T], pos int) {
			if _, ok := newPositions[nb]; !ok {
				newOrder = append(newOrder, nb)
			}
			newPositions[nb] = append(newPositions[nb], pos)
		}
		popLatest := func(nb Bigram[T]) {
			stack, ok := newPositions[nb]
			if !ok || len(stack) == 0 {
				return
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				delete(newPositions, nb)
			} else {
				newPositions[nb] = stack
			}
		}

		cur := firstLoc
		for cur != Sentinel {
			// A chain position whose bigram is no longer b is not an
			// occurrence to replace.
			if c.seq.next(cur) == Sentinel || c.seq.bigramAt(cur) != b {
				cur = c.seq.rec[cur].nextSameBigram
				continue
			}
			if c.runs.IsRunBegin(cur) {
				c.runs.Delete(cur)
			}

			// Left-neighbour bookkeeping: the bigram ending at cur's
			// predecessor is about to be destroyed, since cur's symbol
			// is changing.
			if l := c.seq.prev(cur); l != Sentinel {
				bLeft := c.seq.bigramAt(l)
				switch {
				case c.freq.contains(bLeft):
					if bLeft.EqualParts() {
						if c.runs.RunLength(cur)%2 == 0 {
							c.freq.decrement(bLeft, l, c.seq.rec[l].nextSameBigram)
						}
						c.runs.Shrink(cur, l)
					} else {
						c.freq.decrement(bLeft, l, c.seq.rec[l].nextSameBigram)
					}
				default:
					popLatest(bLeft)
				}
				// l no longer starts an occurrence of bLeft, so take it
				// out of that bigram's same-bigram chain.
				ps, ns := c.seq.rec[l].prevSameBigram, c.seq.rec[l].nextSameBigram
				if ps != Sentinel {
					c.seq.rec[ps].nextSameBigram = ns
				}
				if ns != Sentinel {
					c.seq.rec[ns].prevSameBigram = ps
				}
				c.seq.rec[l].prevSameBigram, c.seq.rec[l].nextSameBigram = Sentinel, Sentinel
			}

			// Right-neighbour bookkeeping: the bigram starting at cur's
			// successor is about to be destroyed the same way, unless
			// it's the very bigram we're already replacing (b), which
			// would otherwise double-count this sweep.
			r := c.seq.next(cur)
			if nr := c.seq.next(r); nr != Sentinel {
				bRight := c.seq.bigramAt(r)
				if bRight != b {
					switch {
					case c.freq.contains(bRight):
						if bRight.EqualParts() {
							if c.runs.RunLength(r)%2 == 0 {
								c.freq.decrement(bRight, r, c.seq.rec[r].nextSameBigram)
							}
							c.runs.Shrink(r, nr)
						} else {
							c.freq.decrement(bRight, r, c.seq.rec[r].nextSameBigram)
						}
					default:
						popLatest(bRight)
					}
				}
			}

			c.seq.replacePairWithNonterminal(cur, a)

			if l2 := c.seq.prev(cur); l2 != Sentinel {
				push(c.seq.bigramAt(l2), l2)
			}
			if c.seq.next(cur) != Sentinel {
				push(c.seq.bigramAt(cur), cur)
			}

			cur = c.seq.rec[cur].nextSameBigram
		}

		for _, nb := range newOrder {
			pos, ok := newPositions[nb]
			if !ok || len(pos) == 0 {
				continue
			}
			// A bigram can be pushed, fully popped back out via
			// popLatest, and pushed again later in the same sweep,
			// which puts it in newOrder twice. Deleting it here as
			// soon as it's processed makes the second occurrence a
			// harmless no-op instead of registering or merging it
			// twice.
			delete(newPositions, nb)
			sort.Ints(pos)

			freq := countOccurrences(c.seq, pos)
			c.seq.rec[pos[0]].prevSameBigram = Sentinel
			c.seq.rec[pos[len(pos)-1]].nextSameBigram = Sentinel
			for i := 1; i < len(pos); i++ {
				c.seq.linkSameBigram(pos[i-1], pos[i])
			}
			if freq >= 2 {
				c.freq.register(nb, pos[0], freq)
			}
			if nb.EqualParts() {
				for _, p := range pos {
					if nxt := c.seq.next(p); nxt != Sentinel {
						c.runs.NoteNewPair(c.seq, p, nxt)
					}
				}
			}
		}
	}
}

func (c *Compressor[T]) emit() {
	out := make([]Symbol[T], 0, len(c.seq.rec))
	c.seq.walkActive(func(p int) { out = append(out, c.seq.rec[p].symbol) })
	c.compressed = out
}
