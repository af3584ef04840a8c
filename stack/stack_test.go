package stack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlquest/stack"
)

var rpnVariants = map[string]func([]string) (int, error){
	"Switch":    stack.EvalRPN,
	"IfElse":    stack.EvalRPNIfElse,
	"OpTable":   stack.EvalRPNOpTable,
	"Recursive": stack.EvalRPNRecursive,
	"InPlace":   stack.EvalRPNInPlace,
	"Infix":     stack.EvalRPNInfix,
}

// TestEvalRPN verifies evaluation, including truncating division of negative values.
func TestEvalRPN(t *testing.T) {
	cases := []struct {
		tokens []string
		want   int
	}{
		{[]string{"2", "1", "+", "3", "*"}, 9},
		{[]string{"4", "13", "5", "/", "+"}, 6},
		{[]string{"10", "6", "9", "3", "+", "-11", "*", "/", "*", "17", "+", "5", "+"}, 22},
		{[]string{"42"}, 42},
		{[]string{"-7", "2", "/"}, -3},
		{[]string{"7", "-2", "/"}, -3},
		{[]string{"3", "-4", "-"}, 7},
		{[]string{"1", "2", "3", "*", "-"}, -5},
	}
	for name, fn := range rpnVariants {
		for _, tc := range cases {
			in := append([]string(nil), tc.tokens...)
			got, err := fn(in)
			require.NoError(t, err, "%s(%v)", name, tc.tokens)
			assert.Equal(t, tc.want, got, "%s(%v)", name, tc.tokens)
			assert.Equal(t, tc.tokens, in, "%s must not mutate tokens", name)
		}
	}
}

// TestEvalRPN_Errors verifies malformed expressions and division by zero.
func TestEvalRPN_Errors(t *testing.T) {
	malformed := [][]string{
		{},
		{"+"},
		{"1", "+"},
		{"1", "2"},
		{"1", "x", "+"},
		{"1", "2", "%"},
	}
	for name, fn := range rpnVariants {
		for _, tokens := range malformed {
			_, err := fn(tokens)
			assert.ErrorIs(t, err, stack.ErrMalformedExpression, "%s(%v)", name, tokens)
		}
		_, err := fn([]string{"4", "0", "/"})
		assert.ErrorIs(t, err, stack.ErrDivisionByZero, name)
		_, err = fn([]string{"4", "2", "2", "-", "/"})
		assert.ErrorIs(t, err, stack.ErrDivisionByZero, name)
	}
}

// TestToInfix verifies the parenthesised rendering.
func TestToInfix(t *testing.T) {
	got, err := stack.ToInfix([]string{"2", "1", "+", "3", "*"})
	require.NoError(t, err)
	assert.Equal(t, "((2 + 1) * 3)", got)
}

var exclusiveVariants = map[string]func(int, []string) ([]int, error){
	"PrevTime": stack.ExclusiveTime,
	"Pairing":  stack.ExclusiveTimePairing,
	"Segments": stack.ExclusiveTimeSegments,
	"Subtract": stack.ExclusiveTimeSubtract,
	"Parsed":   stack.ExclusiveTimeParsed,
}

// TestExclusiveTime verifies nested, recursive and back-to-back calls.
func TestExclusiveTime(t *testing.T) {
	cases := []struct {
		n    int
		logs []string
		want []int
	}{
		{2, []string{"0:start:0", "1:start:2", "1:end:5", "0:end:6"}, []int{3, 4}},
		{1, []string{"0:start:0", "0:start:2", "0:end:5", "0:start:6", "0:end:6", "0:end:7"}, []int{8}},
		{2, []string{"0:start:0", "0:start:2", "0:end:5", "1:start:6", "1:end:6", "0:end:7"}, []int{7, 1}},
		{2, []string{"0:start:0", "0:end:0", "1:start:1", "1:end:3"}, []int{1, 3}},
		{3, nil, []int{0, 0, 0}},
	}
	for name, fn := range exclusiveVariants {
		for _, tc := range cases {
			got, err := fn(tc.n, tc.logs)
			require.NoError(t, err, name)
			assert.Equal(t, tc.want, got, "%s(%d, %v)", name, tc.n, tc.logs)
		}
	}
}

// TestExclusiveTime_Malformed verifies parse failures and improper nesting.
func TestExclusiveTime_Malformed(t *testing.T) {
	cases := []struct {
		n    int
		logs []string
	}{
		{1, []string{"0:begin:0", "0:end:1"}},
		{1, []string{"0-start-0"}},
		{1, []string{"1:start:0", "1:end:1"}},
		{1, []string{"x:start:0"}},
		{1, []string{"0:start:y"}},
		{1, []string{"0:end:3"}},
		{2, []string{"0:start:0", "1:end:1"}},
		{1, []string{"0:start:0"}},
		{-1, nil},
	}
	for name, fn := range exclusiveVariants {
		for _, tc := range cases {
			_, err := fn(tc.n, tc.logs)
			assert.ErrorIs(t, err, stack.ErrMalformedLog, "%s(%d, %v)", name, tc.n, tc.logs)
		}
	}
}

// TestFinalPrices verifies the next-not-higher discount.
func TestFinalPrices(t *testing.T) {
	cases := []struct{ in, want []int }{
		{[]int{8, 4, 6, 2, 3}, []int{4, 2, 4, 2, 3}},
		{[]int{1, 2, 3, 4, 5}, []int{1, 2, 3, 4, 5}},
		{[]int{10, 1, 1, 6}, []int{9, 0, 1, 6}},
		{[]int{}, []int{}},
		{[]int{5, 5, 5}, []int{0, 0, 5}},
	}
	for name, fn := range map[string]func([]int) []int{
		"Stack":   stack.FinalPrices,
		"Brute":   stack.FinalPricesBrute,
		"Reverse": stack.FinalPricesReverse,
		"InPlace": stack.FinalPricesInPlace,
	} {
		for _, tc := range cases {
			in := append([]int{}, tc.in...)
			assert.Equal(t, tc.want, fn(in), "%s(%v)", name, tc.in)
			assert.Equal(t, tc.in, in, "%s must not mutate prices", name)
		}
	}
}

// TestDailyTemperatures verifies waits for a strictly warmer day.
func TestDailyTemperatures(t *testing.T) {
	cases := []struct{ in, want []int }{
		{[]int{73, 74, 75, 71, 69, 72, 76, 73}, []int{1, 1, 4, 2, 1, 1, 0, 0}},
		{[]int{30, 40, 50, 60}, []int{1, 1, 1, 0}},
		{[]int{30, 60, 90}, []int{1, 1, 0}},
		{[]int{50, 50, 50}, []int{0, 0, 0}},
		{[]int{}, []int{}},
		{[]int{89, 62, 70, 58, 47, 47, 46, 76, 100, 70}, []int{8, 1, 5, 4, 3, 2, 1, 1, 0, 0}},
	}
	for name, fn := range map[string]func([]int) []int{
		"Stack":    stack.DailyTemperatures,
		"Brute":    stack.DailyTemperaturesBrute,
		"Backward": stack.DailyTemperaturesBackward,
		"NextSeen": stack.DailyTemperaturesNextSeen,
	} {
		for _, tc := range cases {
			assert.Equal(t, tc.want, fn(tc.in), "%s(%v)", name, tc.in)
		}
	}
}

var rectangleVariants = map[string]func([]int) int{
	"Sentinel":      stack.LargestRectangle,
	"TwoScan":       stack.LargestRectangleTwoScan,
	"Brute":         stack.LargestRectangleBrute,
	"Expand":        stack.LargestRectangleExpand,
	"Bounds":        stack.LargestRectangleBounds,
	"DivideConquer": stack.LargestRectangleDivideConquer,
}

// TestLargestRectangle verifies classic histograms and degenerate shapes.
func TestLargestRectangle(t *testing.T) {
	cases := []struct {
		in   []int
		want int
	}{
		{[]int{2, 1, 5, 6, 2, 3}, 10},
		{[]int{2, 4}, 4},
		{[]int{}, 0},
		{[]int{0, 0}, 0},
		{[]int{3}, 3},
		{[]int{1, 1, 1, 1}, 4},
		{[]int{1, 2, 3, 4, 5}, 9},
		{[]int{5, 4, 3, 2, 1}, 9},
		{[]int{6, 2, 5, 4, 5, 1, 6}, 12},
	}
	for name, fn := range rectangleVariants {
		for _, tc := range cases {
			assert.Equal(t, tc.want, fn(tc.in), "%s(%v)", name, tc.in)
		}
	}
}
