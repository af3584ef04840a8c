package linkedlist

// DeleteDuplicates removes repeated values from a sorted list so every value
// appears once, keeping the first node of each run.
//
// Complexity: O(n) time, O(1) space.
func DeleteDuplicates(head *ListNode) *ListNode {
	for cur := head; cur != nil && cur.Next != nil; {
		if cur.Val == cur.Next.Val {
			cur.Next = cur.Next.Next
		} else {
			cur = cur.Next
		}
	}
	return head
}

// DeleteDuplicatesRecursive dedupes the tail first, then drops head if it
// equals the new second node.
// Complexity: O(n) time, O(n) stack.
func DeleteDuplicatesRecursive(head *ListNode) *ListNode {
	if head == nil || head.Next == nil {
		return head
	}
	head.Next = DeleteDuplicatesRecursive(head.Next)
	if head.Val == head.Next.Val {
		return head.Next
	}
	return head
}

// DeleteDuplicatesSentinel keeps a pointer to the last distinct node behind
// a sentinel head and links each new value onto it.
func DeleteDuplicatesSentinel(head *ListNode) *ListNode {
	sentinel := &ListNode{Next: head}
	last := head
	if last == nil {
		return nil
	}
	for cur := head.Next; cur != nil; cur = cur.Next {
		if cur.Val != last.Val {
			last.Next = cur
			last = cur
		}
	}
	last.Next = nil

	return sentinel.Next
}

// DeleteDuplicatesSet drops any node whose value was already seen. It does
// not rely on sorted input.
// Complexity: O(n) time, O(n) space.
func DeleteDuplicatesSet(head *ListNode) *ListNode {
	if head == nil {
		return nil
	}
	seen := map[int]struct{}{head.Val: {}}
	for cur := head; cur.Next != nil; {
		if _, dup := seen[cur.Next.Val]; dup {
			cur.Next = cur.Next.Next
			continue
		}
		seen[cur.Next.Val] = struct{}{}
		cur = cur.Next
	}

	return head
}
