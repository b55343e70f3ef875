package smurf

import (
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// Punctuation that may trail a word base. Anything else in a token makes it
// pass through untouched.
const punctuation = ".,!?;:'\"`"

// SplitToken splits a token into its word base (word characters and hyphens)
// and trailing punctuation. ok is false when the token does not have that
// shape, e.g. pure punctuation, emoji, or quoting at the front.
func SplitToken(token string) (base, punct string, ok bool) {
	end := len(token)
	for end > 0 && strings.IndexByte(punctuation, token[end-1]) >= 0 {
		end--
	}
	base, punct = token[:end], token[end:]
	if base == "" {
		return "", "", false
	}
	for _, r := range base {
		if !isWordRune(r) && r != '-' {
			return "", "", false
		}
	}
	return base, punct, true
}

// Word transforms a single whitespace-delimited token. Hyphenated bases are
// transformed one sub-word at a time and trailing punctuation is reattached
// unchanged.
func (s *Smurfifier) Word(token string) string {
	base, punct, ok := SplitToken(token)
	if !ok {
		return token
	}
	parts := lo.Map(strings.Split(base, "-"), func(part string, _ int) string {
		return s.subWord(part)
	})
	return strings.Join(parts, "-") + punct
}

// subWord substitutes one hyphen-free word, or leaves it alone. This is the
// only place randomness enters at word granularity: each unlisted alphabetic
// word draws independently against the chaos chance.
func (s *Smurfifier) subWord(word string) string {
	switch Classify(word) {
	case Verb, Noun:
		return Inflect(stemPlain, word)
	case Adjective:
		return Inflect(stemAdjective, word)
	case Exclaim:
		return ExclaimMarker
	}
	if isAlpha(word) && s.rng.Float64() < s.chaosChance {
		return Inflect(stemPlain, word)
	}
	return word
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
