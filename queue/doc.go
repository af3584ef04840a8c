// Package queue covers FIFO exercises: the cafeteria sandwich queue, the
// ticket line, and a generic Queue built only from stacks.
//
// 🚀 Problems
//
//   - CountStudents: students left unable to eat.
//   - TimeRequiredToBuy: seconds until person k finishes buying.
//   - Queue[T]: FIFO queue on LIFO stacks, four strategies.
//
// Complexity of the queue strategies:
//
//	NewQueue             push O(1), pop O(1) amortised
//	NewPushHeavyQueue    push O(n), pop O(1)
//	NewRecursiveQueue    push O(n) time and stack depth, pop O(1)
//	NewFrontCachedQueue  push O(1), pop O(1) amortised, peek O(1)
//
// Queues are not safe for concurrent use.
package queue
