package smurf

import (
	"strings"
)

// Line transforms one line of text. Tokens are whitespace-delimited and the
// output rejoins with single spaces. Two multi-word rules run before the
// plain per-word pass:
//
//   - "<verb> some <noun>" transforms exactly one side of the idiom, picked
//     by a coin flip, and always emits the literal "some" in the middle.
//   - a connector ("and" or a standalone comma) whose neighbors would both
//     come out smurf-prefixed keeps only one of them transformed. When only
//     one neighbor would transform, the rule steps past just the first token
//     and re-evaluates from the connector.
func (s *Smurfifier) Line(line string) string {
	words := strings.Fields(line)
	result := make([]string, 0, len(words))
	i := 0
	for i < len(words) {
		if i+2 < len(words) &&
			strings.ToLower(words[i+1]) == "some" &&
			IsVerb(stripToWord(words[i])) &&
			IsNoun(stripToWord(words[i+2])) {
			if s.coin() {
				result = append(result, s.Word(words[i]), "some", words[i+2])
			} else {
				result = append(result, words[i], "some", s.Word(words[i+2]))
			}
			i += 3
			continue
		}

		if i+2 < len(words) && IsConnector(words[i+1]) {
			left, right := s.Word(words[i]), s.Word(words[i+2])
			if isSmurfed(left) && isSmurfed(right) {
				if s.coin() {
					result = append(result, left, words[i+1], words[i+2])
				} else {
					result = append(result, words[i], words[i+1], right)
				}
				i += 3
				continue
			}
		}

		result = append(result, s.Word(words[i]))
		i++
	}
	return strings.Join(result, " ")
}

// isSmurfed reports whether a transformed token came out smurf-prefixed.
func isSmurfed(word string) bool {
	return strings.HasPrefix(strings.ToLower(word), "smurf")
}

// stripToWord lowercases a token and drops everything except word characters
// and hyphens, for lexicon probes inside the multi-word rules.
func stripToWord(token string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(token) {
		if isWordRune(r) || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
