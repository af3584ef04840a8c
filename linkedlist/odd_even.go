package linkedlist

// OddEvenList groups the nodes at odd positions (1-based) before those at
// even positions, preserving relative order within each group.
//
// Two chains advance in lock step; the even chain is appended at the end.
//
// Complexity: O(n) time, O(1) space.
func OddEvenList(head *ListNode) *ListNode {
	if head == nil || head.Next == nil {
		return head
	}
	odd, even := head, head.Next
	evenHead := even
	for even != nil && even.Next != nil {
		odd.Next = even.Next
		odd = odd.Next
		even.Next = odd.Next
		even = even.Next
	}
	odd.Next = evenHead

	return head
}

// OddEvenListSentinel deals the nodes onto two sentinel-headed chains by
// position parity.
func OddEvenListSentinel(head *ListNode) *ListNode {
	var oddHead, evenHead ListNode
	odd, even := &oddHead, &evenHead
	for pos := 1; head != nil; pos++ {
		if pos%2 == 1 {
			odd.Next = head
			odd = head
		} else {
			even.Next = head
			even = head
		}
		head = head.Next
	}
	even.Next = nil
	odd.Next = evenHead.Next

	return oddHead.Next
}

// OddEvenListCollect gathers the nodes into a slice and relinks them in the
// target order.
// Complexity: O(n) time, O(n) space.
func OddEvenListCollect(head *ListNode) *ListNode {
	var nodes []*ListNode
	for cur := head; cur != nil; cur = cur.Next {
		nodes = append(nodes, cur)
	}
	if len(nodes) < 2 {
		return head
	}
	order := make([]*ListNode, 0, len(nodes))
	for i := 0; i < len(nodes); i += 2 {
		order = append(order, nodes[i])
	}
	for i := 1; i < len(nodes); i += 2 {
		order = append(order, nodes[i])
	}
	for i := 0; i < len(order)-1; i++ {
		order[i].Next = order[i+1]
	}
	order[len(order)-1].Next = nil

	return order[0]
}

// OddEvenListSplit splits the list recursively into odd and even chains,
// returning both heads and tails, then joins them.
// Complexity: O(n) time, O(n) stack.
func OddEvenListSplit(head *ListNode) *ListNode {
	if head == nil || head.Next == nil {
		return head
	}
	oddHead, oddTail, evenHead, _ := split(head, true)
	oddTail.Next = evenHead

	return oddHead
}

// split returns the chains built from node onward, with node on the odd
// chain when isOdd is set.
func split(node *ListNode, isOdd bool) (oddHead, oddTail, evenHead, evenTail *ListNode) {
	if node == nil {
		return nil, nil, nil, nil
	}
	oddHead, oddTail, evenHead, evenTail = split(node.Next, !isOdd)
	if isOdd {
		node.Next = oddHead
		if oddTail == nil {
			oddTail = node
		}
		return node, oddTail, evenHead, evenTail
	}
	node.Next = evenHead
	if evenTail == nil {
		evenTail = node
	}

	return oddHead, oddTail, node, evenTail
}
