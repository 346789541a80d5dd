package utils

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// DefaultForbidden lists the characters rejected by ValidateString unless overridden
const DefaultForbidden = "\n\r\t"

// NormalizeString normalizes a string as NFKC
func NormalizeString(str string) string {
	return norm.NFKC.String(str)
}

// ValidateString checks if the given string is:
//
// 1. non-empty
// 2. entirely composed of utf8 runes
// 3. normalized as NFKC
// 4. does not contain any forbidden Unicode code points
func ValidateString(str string, forbidden ...string) error {
	var f string
	if len(forbidden) == 0 {
		f = DefaultForbidden
	} else {
		f = strings.Join(forbidden, "")
	}

	if len(str) == 0 {
		return fmt.Errorf("string is empty")
	}

	if !utf8.ValidString(str) {
		return fmt.Errorf("not an utf8 string")
	}

	if !norm.NFKC.IsNormalString(str) {
		return fmt.Errorf("wrong normalization")
	}

	if len(f) == 0 {
		return nil
	}

	f = norm.NFKC.String(f)
	if strings.ContainsAny(str, f) {
		return fmt.Errorf("string '%s' must not contain any of '%q'", str, f)
	}

	return nil
}
