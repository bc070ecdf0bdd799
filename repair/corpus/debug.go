package corpus

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/naoya-matsuno/Re-Pair"
)

// WriteDebugCSV renders a rule list as CSV (index, left, right, freq),
// restoring the debug dump the original construction offered through its
// to_string helpers. This is a debug artifact, not a persistence format:
// nothing in this repository reads a debug CSV back in.
func WriteDebugCSV[T comparable](w io.Writer, rules []repair.Rule[T]) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"index", "left", "right", "freq"}); err != nil {
		return err
	}
	for _, r := range rules {
		row := []string{
			strconv.Itoa(r.Index),
			r.Left.String(),
			r.Right.String(),
			strconv.Itoa(r.Freq),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
