package smurf

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Inflect mirrors the original word's suffix and casing onto a substitute
// stem. Suffix rules are checked in fixed order and never combine: -ing,
// then -ed, then -s (but not -ss). Casing is applied to the suffixed result:
// an all-uppercase original uppercases everything, a title-case original
// capitalizes the first letter.
func Inflect(stem, original string) string {
	lower := strings.ToLower(original)
	result := stem
	switch {
	case strings.HasSuffix(lower, "ing"):
		result += "ing"
	case strings.HasSuffix(lower, "ed"):
		result += "ed"
	case strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss"):
		result += "s"
	}

	switch {
	case isUpper(original):
		return strings.ToUpper(result)
	case isTitle(original):
		return capitalize(result)
	}
	return result
}

// isUpper reports whether the string has at least one letter and no
// lowercase ones.
func isUpper(s string) bool {
	hasUpper := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

// isTitle reports whether the first letter is uppercase and the rest carry
// no uppercase letters.
func isTitle(s string) bool {
	first, size := utf8.DecodeRuneInString(s)
	if !unicode.IsUpper(first) {
		return false
	}
	for _, r := range s[size:] {
		if unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
