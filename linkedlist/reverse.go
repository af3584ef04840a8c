package linkedlist

// ReverseList reverses the list in place and returns the new head.
// Complexity: O(n) time, O(1) space.
func ReverseList(head *ListNode) *ListNode {
	var prev *ListNode
	for cur := head; cur != nil; {
		next := cur.Next
		cur.Next = prev
		prev, cur = cur, next
	}
	return prev
}

// ReverseListRecursive reverses the tail, then hangs head after it.
// Complexity: O(n) time, O(n) stack.
func ReverseListRecursive(head *ListNode) *ListNode {
	if head == nil || head.Next == nil {
		return head
	}
	newHead := ReverseListRecursive(head.Next)
	head.Next.Next = head
	head.Next = nil

	return newHead
}

// ReverseListStack pushes every node and relinks them while popping.
// Complexity: O(n) time, O(n) space.
func ReverseListStack(head *ListNode) *ListNode {
	var stack []*ListNode
	for cur := head; cur != nil; cur = cur.Next {
		stack = append(stack, cur)
	}
	if len(stack) == 0 {
		return nil
	}
	newHead := stack[len(stack)-1]
	cur := newHead
	for i := len(stack) - 2; i >= 0; i-- {
		cur.Next = stack[i]
		cur = stack[i]
	}
	cur.Next = nil

	return newHead
}

// ReverseListTailRecursive carries the reversed prefix as an accumulator.
func ReverseListTailRecursive(head *ListNode) *ListNode {
	return reverseInto(head, nil)
}

func reverseInto(cur, prev *ListNode) *ListNode {
	if cur == nil {
		return prev
	}
	next := cur.Next
	cur.Next = prev
	return reverseInto(next, cur)
}
