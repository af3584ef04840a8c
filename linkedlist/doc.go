// Package linkedlist implements singly linked list exercises: removing
// duplicates from a sorted list, odd/even regrouping, reversal, and deep
// copying of a list with random pointers.
//
// 🚀 Problems
//
//   - DeleteDuplicates: drop repeated values from a sorted list.
//   - OddEvenList: all odd-position nodes, then all even-position nodes.
//   - ReverseList: reverse the links.
//   - CopyRandomList: clone a list whose nodes also carry a random pointer.
//
// ✨ Conventions
//
// List operations rewire the nodes they are given and return the new head;
// callers that need the original must build a fresh list. CopyRandomList is
// the exception: it never mutates its input, the Interweave variant included
// (it restores the original links before returning).
//
// FromSlice/Slice and RandomFromPairs/Pairs convert between lists and plain
// values so tests and the case catalog can describe lists as data.
package linkedlist
