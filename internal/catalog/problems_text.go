package catalog

import (
	"github.com/katalvlaran/lvlquest/stack"
	"github.com/katalvlaran/lvlquest/strs"
)

type keyInput struct {
	S string `yaml:"s"`
	K int    `yaml:"k"`
}

type matchInput struct {
	A string `yaml:"a"`
	B string `yaml:"b"`
}

type logInput struct {
	N    int      `yaml:"n"`
	Logs []string `yaml:"logs"`
}

func textProblems() []*Problem {
	return []*Problem{
		define("strs", "detect-capital", pure[string, bool],
			v("count", strs.DetectCapital),
			v("rules", strs.DetectCapitalRules),
			v("compare", strs.DetectCapitalCompare),
			v("pattern", strs.DetectCapitalPattern),
			v("tail", strs.DetectCapitalTail),
		),
		define("strs", "license-key-formatting",
			func(fn func(string, int) (string, error), in keyInput) (string, error) {
				return fn(in.S, in.K)
			},
			v("back-to-front", strs.LicenseKeyFormatting),
			v("first-group", strs.LicenseKeyFormattingFirstGroup),
			v("runes", strs.LicenseKeyFormattingRunes),
			v("chunks", strs.LicenseKeyFormattingChunks),
			v("arithmetic", strs.LicenseKeyFormattingArithmetic),
		),
		define("strs", "mask-pii", fallible[string, string],
			v("direct", strs.MaskPII),
			v("regexp", strs.MaskPIIRegexp),
			v("compact", strs.MaskPIICompact),
		),
		define("strs", "repeated-substring-pattern", pure[string, bool],
			v("doubled", strs.RepeatedSubstringPattern),
			v("brute", strs.RepeatedSubstringPatternBrute),
			v("divisors", strs.RepeatedSubstringPatternDivisors),
			v("kmp", strs.RepeatedSubstringPatternKMP),
			v("factors", strs.RepeatedSubstringPatternFactors),
		),
		define("strs", "repeated-string-match",
			func(fn func(string, string) int, in matchInput) (int, error) {
				return fn(in.A, in.B), nil
			},
			v("ceil", strs.RepeatedStringMatch),
			v("bounds", strs.RepeatedStringMatchBounds),
			v("pruned", strs.RepeatedStringMatchPruned),
			v("rabin-karp", strs.RepeatedStringMatchRabinKarp),
			v("kmp", strs.RepeatedStringMatchKMP),
		),

		define("stack", "eval-rpn", fallible[[]string, int],
			v("switch", stack.EvalRPN),
			v("if-else", stack.EvalRPNIfElse),
			v("op-table", stack.EvalRPNOpTable),
			v("recursive", stack.EvalRPNRecursive),
			v("in-place", stack.EvalRPNInPlace),
			v("infix", stack.EvalRPNInfix),
		),
		define("stack", "exclusive-time",
			func(fn func(int, []string) ([]int, error), in logInput) ([]int, error) {
				return fn(in.N, in.Logs)
			},
			v("previous", stack.ExclusiveTime),
			v("pairing", stack.ExclusiveTimePairing),
			v("segments", stack.ExclusiveTimeSegments),
			v("subtract", stack.ExclusiveTimeSubtract),
			v("parsed", stack.ExclusiveTimeParsed),
		),
		define("stack", "final-prices", pure[[]int, []int],
			v("monotonic", stack.FinalPrices),
			v("brute", stack.FinalPricesBrute),
			v("reverse", stack.FinalPricesReverse),
			v("in-place", stack.FinalPricesInPlace),
		),
		define("stack", "daily-temperatures", pure[[]int, []int],
			v("monotonic", stack.DailyTemperatures),
			v("brute", stack.DailyTemperaturesBrute),
			v("backward", stack.DailyTemperaturesBackward),
			v("next-seen", stack.DailyTemperaturesNextSeen),
		),
		define("stack", "largest-rectangle", pure[[]int, int],
			v("sentinel", stack.LargestRectangle),
			v("two-scan", stack.LargestRectangleTwoScan),
			v("brute", stack.LargestRectangleBrute),
			v("expand", stack.LargestRectangleExpand),
			v("bounds", stack.LargestRectangleBounds),
			v("divide-conquer", stack.LargestRectangleDivideConquer),
		),
	}
}
