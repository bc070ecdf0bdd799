package repair_test

import (
	"fmt"

	"github.com/naoya-matsuno/Re-Pair"
)

func ExampleCompress() {
	compressed, rules := repair.Compress([]byte("abababab"))

	fmt.Println(len(compressed) < len("abababab"))
	fmt.Println(len(rules) > 0)

	out, err := repair.Decompress(compressed, rules)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(string(out))
	// Output:
	// true
	// true
	// abababab
}

func ExampleDecompress() {
	rules := []repair.Rule[byte]{
		{Left: repair.Terminal(byte('a')), Right: repair.Terminal(byte('b')), Index: 0},
	}
	compressed := []repair.Symbol[byte]{repair.NonTerminal[byte](0), repair.NonTerminal[byte](0)}

	out, err := repair.Decompress(compressed, rules)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(string(out))
	// Output:
	// abab
}
