package repair

import (
	"container/list"
	"fmt"
)

// Decompress expands a compressed symbol sequence back into the original
// alphabet given the rule list it was produced with. Every symbol is
// placed on a doubly-linked list, and each non-terminal encountered is
// rewritten in place to its rule's left symbol with the right symbol
// inserted immediately after, re-examining the same list position since
// the left symbol may itself be a non-terminal. Because every rule's
// right-hand side only references rules of strictly smaller index, this
// process is guaranteed to terminate.
func Decompress[T comparable](compressed []Symbol[T], rules []Rule[T]) ([]T, error) {
	l := list.New()
	for _, s := range compressed {
		l.PushBack(s)
	}

	for e := l.Front(); e != nil; {
		sym := e.Value.(Symbol[T])
		if !sym.IsNonTerminal() {
			e = e.Next()
			continue
		}

		idx := sym.Index()
		if idx < 0 || idx >= len(rules) {
			return nil, fmt.Errorf("%w: non-terminal A%d has no matching rule (have %d rules)", ErrUndefinedRule, idx, len(rules))
		}
		rule := rules[idx]
		e.Value = rule.Left
		l.InsertAfter(rule.Right, e)
		// Don't advance: e.Value may itself need further expansion.
	}

	out := make([]T, 0, l.Len())
	for e := l.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(Symbol[T]).Value())
	}
	return out, nil
}
