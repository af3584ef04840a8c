package strs

import (
	"strings"
)

// LicenseKeyFormatting upper-cases s, drops the dashes and regroups the
// characters into groups of k separated by '-', where only the first group
// may be shorter.
//
// Walk from the back, inserting a dash after every k characters.
//
// Complexity: O(n) time, O(n) space.
func LicenseKeyFormatting(s string, k int) (string, error) {
	if k <= 0 {
		return "", ErrInvalidGroupSize
	}
	out := make([]byte, 0, len(s)+len(s)/k)
	count := 0
	for i := len(s) - 1; i >= 0; i-- {
		c := s[i]
		if c == '-' {
			continue
		}
		if count > 0 && count%k == 0 {
			out = append(out, '-')
		}
		out = append(out, toUpper(c))
		count++
	}
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}

	return string(out), nil
}

// LicenseKeyFormattingFirstGroup computes the first group's length up front
// (len mod k, or k) and slices the rest in fixed steps.
func LicenseKeyFormattingFirstGroup(s string, k int) (string, error) {
	if k <= 0 {
		return "", ErrInvalidGroupSize
	}
	clean := strings.ToUpper(strings.ReplaceAll(s, "-", ""))
	if clean == "" {
		return "", nil
	}
	first := len(clean) % k
	if first == 0 {
		first = k
	}
	groups := []string{clean[:first]}
	for i := first; i < len(clean); i += k {
		groups = append(groups, clean[i:i+k])
	}

	return strings.Join(groups, "-"), nil
}

// LicenseKeyFormattingRunes collects characters into a byte slice, then
// emits groups back to front into a second buffer.
func LicenseKeyFormattingRunes(s string, k int) (string, error) {
	if k <= 0 {
		return "", ErrInvalidGroupSize
	}
	chars := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '-' {
			chars = append(chars, toUpper(s[i]))
		}
	}
	var groups []string
	for end := len(chars); end > 0; end -= k {
		start := max(end-k, 0)
		groups = append(groups, string(chars[start:end]))
	}
	for l, r := 0, len(groups)-1; l < r; l, r = l+1, r-1 {
		groups[l], groups[r] = groups[r], groups[l]
	}

	return strings.Join(groups, "-"), nil
}

// LicenseKeyFormattingChunks reverses the cleaned key, chunks it by k and
// reverses the joined result back.
func LicenseKeyFormattingChunks(s string, k int) (string, error) {
	if k <= 0 {
		return "", ErrInvalidGroupSize
	}
	rev := []byte(strings.ToUpper(strings.ReplaceAll(s, "-", "")))
	reverseBytes(rev)
	var b strings.Builder
	for i := 0; i < len(rev); i += k {
		if i > 0 {
			b.WriteByte('-')
		}
		b.Write(rev[i:min(i+k, len(rev))])
	}
	out := []byte(b.String())
	reverseBytes(out)

	return string(out), nil
}

// LicenseKeyFormattingArithmetic writes every character once into a buffer of
// the exact final size, placing dashes by index arithmetic.
func LicenseKeyFormattingArithmetic(s string, k int) (string, error) {
	if k <= 0 {
		return "", ErrInvalidGroupSize
	}
	n := len(s) - strings.Count(s, "-")
	if n == 0 {
		return "", nil
	}
	dashes := (n - 1) / k
	out := make([]byte, n+dashes)
	w := len(out) - 1
	count := 0
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '-' {
			continue
		}
		if count > 0 && count%k == 0 {
			out[w] = '-'
			w--
		}
		out[w] = toUpper(s[i])
		w--
		count++
	}

	return string(out), nil
}

func toUpper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func reverseBytes(b []byte) {
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}
}
