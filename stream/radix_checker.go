package stream

import radix "github.com/armon/go-radix"

type radixChecker struct {
	tree *radix.Tree
	win  *window
}

// NewRadixStreamChecker inserts the reversed words into a radix tree and
// asks for the longest word that prefixes the reversed window.
// Empty words are ignored.
func NewRadixStreamChecker(words []string) StreamChecker {
	tree := radix.New()
	for _, w := range words {
		if w == "" {
			continue
		}
		tree.Insert(reverseString(w), struct{}{})
	}

	return &radixChecker{tree: tree, win: newWindow(longest(words))}
}

func (c *radixChecker) Query(letter byte) bool {
	c.win.push(letter)
	if c.win.n == 0 {
		return false
	}
	_, _, ok := c.tree.LongestPrefix(string(c.win.reversed()))
	return ok
}

func reverseString(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
