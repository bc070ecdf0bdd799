package repair

import "errors"

// ErrUndefinedRule is returned by Decompress when a non-terminal
// references a rule index that does not exist in the supplied rule
// list. It signals a malformed (compressed, rules) pair passed in from
// outside the process; it is never returned for output produced by
// Compress in the same run.
var ErrUndefinedRule = errors.New("repair: undefined rule reference")
