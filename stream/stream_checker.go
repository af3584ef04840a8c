package stream

// StreamChecker answers, after each byte of a stream, whether some suffix of
// the stream so far equals one of a fixed set of words.
type StreamChecker interface {
	Query(letter byte) bool
}

// window is a ring buffer holding the most recent bytes of the stream.
type window struct {
	buf   []byte
	start int
	n     int
}

func newWindow(size int) *window {
	return &window{buf: make([]byte, size)}
}

func (w *window) push(b byte) {
	if len(w.buf) == 0 {
		return
	}
	if w.n < len(w.buf) {
		w.buf[(w.start+w.n)%len(w.buf)] = b
		w.n++
		return
	}
	w.buf[w.start] = b
	w.start = (w.start + 1) % len(w.buf)
}

// back returns the i-th most recent byte; back(0) is the newest.
func (w *window) back(i int) byte {
	return w.buf[(w.start+w.n-1-i)%len(w.buf)]
}

// reversed returns the buffered bytes newest first.
func (w *window) reversed() []byte {
	out := make([]byte, w.n)
	for i := range out {
		out[i] = w.back(i)
	}
	return out
}

// ordered returns the buffered bytes oldest first.
func (w *window) ordered() []byte {
	out := make([]byte, w.n)
	for i := range out {
		out[w.n-1-i] = w.back(i)
	}
	return out
}

// longest returns the length of the longest non-empty word.
func longest(words []string) int {
	m := 0
	for _, w := range words {
		m = max(m, len(w))
	}
	return m
}

type trieNode struct {
	next map[byte]*trieNode
	end  bool
}

func (t *trieNode) child(b byte) *trieNode {
	if t.next == nil {
		t.next = make(map[byte]*trieNode)
	}
	c, ok := t.next[b]
	if !ok {
		c = &trieNode{}
		t.next[b] = c
	}
	return c
}

type reversedTrieChecker struct {
	root *trieNode
	win  *window
}

// NewStreamChecker stores the words reversed in a trie and walks it from
// the newest byte backwards. Query is O(L) for the longest word length L.
// Empty words are ignored.
func NewStreamChecker(words []string) StreamChecker {
	root := &trieNode{}
	for _, w := range words {
		if w == "" {
			continue
		}
		node := root
		for i := len(w) - 1; i >= 0; i-- {
			node = node.child(w[i])
		}
		node.end = true
	}

	return &reversedTrieChecker{root: root, win: newWindow(longest(words))}
}

func (c *reversedTrieChecker) Query(letter byte) bool {
	c.win.push(letter)
	node := c.root
	for i := 0; i < c.win.n; i++ {
		node = node.next[c.win.back(i)]
		if node == nil {
			return false
		}
		if node.end {
			return true
		}
	}
	return false
}

type setChecker struct {
	words map[string]struct{}
	win   *window
}

// NewSetStreamChecker tests every suffix of the window against a word set.
// Query is O(L²).
func NewSetStreamChecker(words []string) StreamChecker {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w != "" {
			set[w] = struct{}{}
		}
	}

	return &setChecker{words: set, win: newWindow(longest(words))}
}

func (c *setChecker) Query(letter byte) bool {
	c.win.push(letter)
	s := string(c.win.ordered())
	for i := 0; i < len(s); i++ {
		if _, ok := c.words[s[i:]]; ok {
			return true
		}
	}
	return false
}

type forwardChecker struct {
	root   *trieNode
	active []*trieNode
}

// NewForwardStreamChecker keeps a forward trie and the set of trie nodes
// reachable by some suffix of the stream. The active set never exceeds L.
func NewForwardStreamChecker(words []string) StreamChecker {
	root := &trieNode{}
	for _, w := range words {
		if w == "" {
			continue
		}
		node := root
		for i := 0; i < len(w); i++ {
			node = node.child(w[i])
		}
		node.end = true
	}

	return &forwardChecker{root: root}
}

func (c *forwardChecker) Query(letter byte) bool {
	c.active = append(c.active, c.root)
	found := false
	kept := c.active[:0]
	for _, node := range c.active {
		next := node.next[letter]
		if next == nil {
			continue
		}
		if next.end {
			found = true
		}
		kept = append(kept, next)
	}
	c.active = kept

	return found
}

type acState struct {
	next map[byte]int
	fail int
	out  bool
}

type ahoCorasickChecker struct {
	states []acState
	cur    int
}

// NewAhoCorasickStreamChecker builds an Aho-Corasick automaton over the
// words. A state's out flag is set when it or any state on its failure
// chain ends a word, so Query is amortised O(1).
func NewAhoCorasickStreamChecker(words []string) StreamChecker {
	states := []acState{{next: map[byte]int{}}}
	for _, w := range words {
		if w == "" {
			continue
		}
		s := 0
		for i := 0; i < len(w); i++ {
			t, ok := states[s].next[w[i]]
			if !ok {
				t = len(states)
				states = append(states, acState{next: map[byte]int{}})
				states[s].next[w[i]] = t
			}
			s = t
		}
		states[s].out = true
	}

	// BFS sets failure links shallowest first.
	queue := make([]int, 0, len(states))
	for _, t := range states[0].next {
		queue = append(queue, t)
	}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for b, t := range states[s].next {
			f := states[s].fail
			for f != 0 {
				if _, ok := states[f].next[b]; ok {
					break
				}
				f = states[f].fail
			}
			if g, ok := states[f].next[b]; ok && g != t {
				states[t].fail = g
			}
			states[t].out = states[t].out || states[states[t].fail].out
			queue = append(queue, t)
		}
	}

	return &ahoCorasickChecker{states: states}
}

func (c *ahoCorasickChecker) Query(letter byte) bool {
	s := c.cur
	for {
		if t, ok := c.states[s].next[letter]; ok {
			s = t
			break
		}
		if s == 0 {
			break
		}
		s = c.states[s].fail
	}
	c.cur = s

	return c.states[s].out
}
