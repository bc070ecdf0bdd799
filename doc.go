// Package repair implements Re-Pair, Larsson and Moffat's linear-time
// offline dictionary compression by recursive pairing.
//
// # Overview
//
// Re-Pair builds a straight-line grammar for a fixed input sequence: it
// repeatedly finds the most frequent adjacent pair of symbols (a bigram),
// replaces every occurrence with a fresh non-terminal, and records the
// substitution as a production rule. The process repeats until no bigram
// occurs more than once, leaving a compressed sequence C and a rule list
// R from which the original input can be reconstructed exactly.
//
// # When to Use
//
// Re-Pair is a good fit for:
//   - Batch compression of a single, fully-available sequence
//   - Workloads that want a grammar, not just a byte stream, because the
//     grammar itself can be queried or manipulated (e.g. computing
//     statistics over repeated substrings)
//   - Inputs with substantial internal repetition at many scales
//
// # When NOT to Use
//
// Re-Pair is not suitable for:
//   - Streaming or online compression: the whole input must be available
//     up front and held in memory as the construction runs
//   - Latency-sensitive small messages: the construction overhead isn't
//     worth it below a few hundred symbols, and Compress returns inputs
//     shorter than four symbols unchanged
//   - General-purpose byte compression where a mature codec (gzip, zstd)
//     already meets the ratio/speed tradeoff wanted
//
// # Basic Usage
//
//	input := []byte("abababab")
//	c := repair.NewCompressor[byte]()
//	compressed, rules := c.Compress(input)
//
//	out, err := repair.Decompress(compressed, rules)
//	// out == input
//
// Compressor and Decompress are generic over any comparable alphabet
// (bytes, runes, or any other comparable terminal type).
//
// # Performance Characteristics
//
// Construction runs in time linear in the input length, using a bucketed
// frequency queue (array of buckets by frequency, O(1) amortized pop of
// the current maximum) and a run tracker that gives O(1) handling of
// same-symbol runs during bigram replacement, avoiding the naive
// quadratic blowup a direct frequency recount per replacement would
// cause on long runs.
package repair
