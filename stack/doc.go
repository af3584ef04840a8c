// Package stack collects stack-driven exercises: Reverse Polish Notation
// evaluation, exclusive function time from a call log, and the monotonic
// stack family (final prices with a discount, daily temperatures, largest
// rectangle in a histogram).
//
// 🚀 Problems
//
//   - EvalRPN: evaluate a postfix expression over + - * /.
//   - ExclusiveTime: per-function self time from "id:start|end:ts" logs.
//   - FinalPrices: subtract the next price that is not higher.
//   - DailyTemperatures: days to wait for a warmer temperature.
//   - LargestRectangle: largest rectangle under a histogram.
//
// ✨ Conventions
//
// Integer division truncates toward zero, as Go's / does. None of the
// functions mutate their input slices.
//
// Complexity: the stack-based variants are O(n) time and O(n) space; the
// Brute and Expand variants are O(n²) and exist as references.
package stack
