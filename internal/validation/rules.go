package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	minCardLength    = 8
	maxCardLength    = 16
	maxNameLength    = 80
	maxBankAccLength = 8
	sortCodeLength   = 6
	isoDate          = "2006-01-02"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// NormalizeCardNumber strips surrounding whitespace.
func NormalizeCardNumber(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeSortCode removes the hyphen separators of a "12-34-56" sort code.
func NormalizeSortCode(s string) string {
	return strings.ReplaceAll(s, "-", "")
}

func ValidCardNumber(s string) bool {
	n := NormalizeCardNumber(s)
	if len(n) < minCardLength || len(n) > maxCardLength {
		return false
	}
	return isDigits(n) && passesLuhn(n)
}

func ValidCVV(s string) bool {
	return (len(s) == 3 || len(s) == 4) && isDigits(s)
}

// ParseExpiry parses a YYYY-MM-DD calendar date.
func ParseExpiry(s string) (time.Time, bool) {
	t, err := time.Parse(isoDate, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func ValidName(s string) bool {
	return utf8.RuneCountInString(s) <= maxNameLength
}

func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func ValidBankAccountNumber(s string) bool {
	return len(s) >= 1 && len(s) <= maxBankAccLength && isDigits(s)
}

func ValidSortCode(s string) bool {
	n := NormalizeSortCode(s)
	return len(n) == sortCodeLength && isDigits(n)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// passesLuhn implements the mod 10 check. number must be all digits.
func passesLuhn(number string) bool {
	sum := 0
	alternate := false
	for i := len(number) - 1; i >= 0; i-- {
		n := int(number[i] - '0')
		if alternate {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		sum += n
		alternate = !alternate
	}
	return sum%10 == 0
}
