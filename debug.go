package repair

import (
	"fmt"
	"io"
)

// DumpState writes a human-readable snapshot of the rule list and the
// currently active sequence to w. It's meant for diagnosing a Compressor
// mid-run (e.g. from a test) rather than for any persisted format.
func (c *Compressor[T]) DumpState(w io.Writer) error {
	if _, err := fmt.Fprint(w, "rules: ["); err != nil {
		return err
	}
	for i, r := range c.rules {
		if i > 0 {
			if _, err := fmt.Fprint(w, ", "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, r.String()); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "]"); err != nil {
		return err
	}

	if _, err := fmt.Fprint(w, "sequence: {"); err != nil {
		return err
	}
	first := true
	var walkErr error
	if c.seq != nil {
		c.seq.walkActive(func(p int) {
			if walkErr != nil {
				return
			}
			if !first {
				if _, err := fmt.Fprint(w, ", "); err != nil {
					walkErr = err
					return
				}
			}
			first = false
			if _, err := fmt.Fprint(w, c.seq.rec[p].symbol.String()); err != nil {
				walkErr = err
			}
		})
	}
	if walkErr != nil {
		return walkErr
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
