package linkedlist

// ListNode is a node of a singly linked list of ints.
type ListNode struct {
	Val  int
	Next *ListNode
}

// FromSlice builds a list holding vals in order. An empty slice yields nil.
func FromSlice(vals []int) *ListNode {
	var head *ListNode
	for i := len(vals) - 1; i >= 0; i-- {
		head = &ListNode{Val: vals[i], Next: head}
	}
	return head
}

// Slice returns the list values from n to the tail. A nil list yields an
// empty, non-nil slice.
func (n *ListNode) Slice() []int {
	out := []int{}
	for ; n != nil; n = n.Next {
		out = append(out, n.Val)
	}
	return out
}

// NoRandom marks a nil random pointer in the pair encoding.
const NoRandom = -1

// RandomNode is a list node with an extra pointer to any node of the same
// list, or nil.
type RandomNode struct {
	Val    int
	Next   *RandomNode
	Random *RandomNode
}

// RandomFromPairs builds a random-pointer list from [value, randomIndex]
// pairs, where randomIndex is the position of the target node or NoRandom.
// Out-of-range indexes are treated as NoRandom.
func RandomFromPairs(pairs [][2]int) *RandomNode {
	nodes := make([]*RandomNode, len(pairs))
	for i, p := range pairs {
		nodes[i] = &RandomNode{Val: p[0]}
		if i > 0 {
			nodes[i-1].Next = nodes[i]
		}
	}
	for i, p := range pairs {
		if r := p[1]; r >= 0 && r < len(nodes) {
			nodes[i].Random = nodes[r]
		}
	}
	if len(nodes) == 0 {
		return nil
	}

	return nodes[0]
}

// Pairs encodes the list back to [value, randomIndex] pairs.
func (n *RandomNode) Pairs() [][2]int {
	index := make(map[*RandomNode]int)
	i := 0
	for cur := n; cur != nil; cur = cur.Next {
		index[cur] = i
		i++
	}
	out := make([][2]int, 0, i)
	for cur := n; cur != nil; cur = cur.Next {
		r := NoRandom
		if cur.Random != nil {
			if j, ok := index[cur.Random]; ok {
				r = j
			}
		}
		out = append(out, [2]int{cur.Val, r})
	}

	return out
}
