package linkedlist

// CopyRandomList returns a deep copy of a random-pointer list: new nodes
// with the same values whose Next and Random point into the copy.
//
// The first pass maps every original node to its clone; the second wires
// the clone pointers through the map.
//
// Complexity: O(n) time, O(n) space.
func CopyRandomList(head *RandomNode) *RandomNode {
	clones := make(map[*RandomNode]*RandomNode)
	for cur := head; cur != nil; cur = cur.Next {
		clones[cur] = &RandomNode{Val: cur.Val}
	}
	for cur := head; cur != nil; cur = cur.Next {
		c := clones[cur]
		c.Next = clones[cur.Next]
		c.Random = clones[cur.Random]
	}

	return clones[head]
}

// CopyRandomListRecursive clones a node, memoising it before recursing into
// Next and Random so cycles through Random terminate.
// Complexity: O(n) time, O(n) space and stack.
func CopyRandomListRecursive(head *RandomNode) *RandomNode {
	return cloneNode(head, make(map[*RandomNode]*RandomNode))
}

func cloneNode(n *RandomNode, seen map[*RandomNode]*RandomNode) *RandomNode {
	if n == nil {
		return nil
	}
	if c, ok := seen[n]; ok {
		return c
	}
	c := &RandomNode{Val: n.Val}
	seen[n] = c
	c.Next = cloneNode(n.Next, seen)
	c.Random = cloneNode(n.Random, seen)

	return c
}

// CopyRandomListInterweave splices each clone right after its original
// (A → A' → B → B'), sets clone.Random = original.Random.Next, then unzips
// the two lists, restoring the original.
// Complexity: O(n) time, O(1) extra space.
func CopyRandomListInterweave(head *RandomNode) *RandomNode {
	if head == nil {
		return nil
	}
	for cur := head; cur != nil; cur = cur.Next.Next {
		cur.Next = &RandomNode{Val: cur.Val, Next: cur.Next}
	}
	for cur := head; cur != nil; cur = cur.Next.Next {
		if cur.Random != nil {
			cur.Next.Random = cur.Random.Next
		}
	}
	copyHead := head.Next
	for cur := head; cur != nil; cur = cur.Next {
		clone := cur.Next
		cur.Next = clone.Next
		if clone.Next != nil {
			clone.Next = clone.Next.Next
		}
	}

	return copyHead
}

// CopyRandomListOnePass creates clones lazily through a single map while
// walking the list once.
func CopyRandomListOnePass(head *RandomNode) *RandomNode {
	clones := make(map[*RandomNode]*RandomNode)
	get := func(n *RandomNode) *RandomNode {
		if n == nil {
			return nil
		}
		c, ok := clones[n]
		if !ok {
			c = &RandomNode{Val: n.Val}
			clones[n] = c
		}
		return c
	}
	for cur := head; cur != nil; cur = cur.Next {
		c := get(cur)
		c.Next = get(cur.Next)
		c.Random = get(cur.Random)
	}

	return get(head)
}
