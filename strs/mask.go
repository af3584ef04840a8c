package strs

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// phonePrefixes maps the number of country-code digits to the masked prefix.
var phonePrefixes = [...]string{"", "+*-", "+**-", "+***-"}

// MaskPII masks an email address or a phone number.
//
// Email "Name@Domain.com" becomes "n*****e@domain.com": lower-cased, with
// the local part reduced to its first and last character around five stars.
// A phone number keeps only its digits; the last ten are the local number
// (masked as "***-***-XXXX") and up to three leading digits form the country
// code (masked as "+*-", "+**-" or "+***-").
//
// Input containing '@' is treated as an email and must have a non-empty
// local part and domain; otherwise it must carry 10 to 13 digits.
//
// Complexity: O(n) time, O(n) space.
func MaskPII(s string) (string, error) {
	if at := strings.IndexByte(s, '@'); at >= 0 {
		return maskEmail(s, at)
	}

	digits := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			digits = append(digits, s[i])
		}
	}
	country := len(digits) - 10
	if country < 0 || country >= len(phonePrefixes) {
		return "", ErrUnrecognizedPII
	}

	return phonePrefixes[country] + "***-***-" + string(digits[len(digits)-4:]), nil
}

var nonDigit = regexp.MustCompile(`\D`)

// MaskPIIRegexp strips separators with a regular expression and builds the
// country prefix from a run of stars.
func MaskPIIRegexp(s string) (string, error) {
	if at := strings.IndexByte(s, '@'); at >= 0 {
		return maskEmail(s, at)
	}

	digits := nonDigit.ReplaceAllString(s, "")
	country := len(digits) - 10
	if country < 0 || country > 3 {
		return "", ErrUnrecognizedPII
	}
	local := "***-***-" + digits[len(digits)-4:]
	if country > 0 {
		return "+" + strings.Repeat("*", country) + "-" + local, nil
	}

	return local, nil
}

// compactPhone holds the fully masked prefix for each country-code length.
var compactPhone = [...]string{"***-***-", "+*-***-***-", "+**-***-***-", "+***-***-***-"}

// MaskPIICompact indexes the email parts by position and picks the whole
// phone prefix from a table.
func MaskPIICompact(s string) (string, error) {
	if at := strings.IndexByte(s, '@'); at >= 0 {
		if at == 0 || at == len(s)-1 || strings.Count(s, "@") > 1 {
			return "", ErrUnrecognizedPII
		}
		s = strings.ToLower(s)
		at = strings.IndexByte(s, '@')
		first, _ := utf8.DecodeRuneInString(s)
		last, _ := utf8.DecodeLastRuneInString(s[:at])
		return string(first) + "*****" + string(last) + s[at:], nil
	}

	n := 0
	var last [4]byte
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			last[n%4] = s[i]
			n++
		}
	}
	if n < 10 || n-10 >= len(compactPhone) {
		return "", ErrUnrecognizedPII
	}
	tail := make([]byte, 4)
	for i := range tail {
		tail[i] = last[(n+i)%4]
	}

	return compactPhone[n-10] + string(tail), nil
}

func maskEmail(s string, at int) (string, error) {
	name, domain := s[:at], s[at+1:]
	if name == "" || domain == "" || strings.IndexByte(domain, '@') >= 0 {
		return "", ErrUnrecognizedPII
	}
	name = strings.ToLower(name)
	first, _ := utf8.DecodeRuneInString(name)
	last, _ := utf8.DecodeLastRuneInString(name)

	return string(first) + "*****" + string(last) + "@" + strings.ToLower(domain), nil
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
