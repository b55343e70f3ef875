package smurf

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Category is the word class a token resolves to. Verbs and nouns share the
// same substitute stem, adjectives get the -y form, and exclamations are
// replaced with the literal marker.
type Category int

const (
	Unclassified Category = iota
	Verb
	Noun
	Adjective
	Exclaim
)

var verbs = map[string]bool{
	// tech verbs
	"fix": true, "use": true, "try": true, "run": true, "make": true,
	"build": true, "break": true, "work": true, "get": true, "open": true,
	"close": true, "start": true, "stop": true, "install": true, "update": true,
	"write": true, "read": true, "create": true, "test": true, "save": true,
	"remove": true, "delete": true, "move": true, "copy": true, "push": true,
	"pull": true, "deploy": true, "debug": true, "submit": true, "sync": true,
	"compile": true, "reboot": true, "configure": true, "clone": true, "publish": true,
	// everyday verbs
	"see": true, "take": true, "give": true, "find": true, "call": true,
	"help": true, "ask": true, "know": true, "need": true, "show": true,
	"leave": true, "come": true, "look": true, "tell": true, "want": true,
	"put": true, "bring": true, "play": true, "speak": true, "learn": true,
	"live": true, "smile": true, "believe": true, "follow": true, "carry": true,
	"become": true, "remember": true, "love": true, "hate": true, "eat": true,
	"drink": true, "sleep": true, "walk": true, "sit": true, "stand": true,
	// fun verbs
	"entertain": true, "sing": true, "dance": true, "dream": true, "fight": true,
	"shout": true, "whisper": true, "laugh": true, "cry": true, "hope": true,
	"plan": true, "smurf": true,
}

var nouns = map[string]bool{
	// tech nouns
	"tool": true, "thing": true, "plan": true, "idea": true, "bug": true,
	"code": true, "file": true, "script": true, "device": true, "command": true,
	"folder": true, "line": true, "project": true, "task": true, "feature": true,
	"issue": true, "input": true, "output": true, "program": true, "proposal": true,
	"workflow": true, "pipeline": true, "repo": true, "package": true, "module": true,
	"service": true, "container": true, "turtle": true, "timeline": true, "cloud": true,
	"feedback": true, "platform": true, "windows": true, "mac": true, "linux": true,
	// everyday nouns
	"time": true, "day": true, "night": true, "man": true, "woman": true,
	"child": true, "world": true, "life": true, "hand": true, "eye": true,
	"place": true, "work": true, "year": true, "friend": true, "family": true,
	"house": true, "name": true, "school": true, "story": true, "water": true,
	"fire": true, "earth": true, "air": true, "city": true, "village": true,
	"river": true, "road": true, "table": true, "book": true, "letter": true,
	"voice": true, "language": true, "song": true, "truth": true, "order": true,
	"union": true, "justice": true,
}

var adjectives = map[string]bool{
	// tech adjectives
	"good": true, "bad": true, "broken": true, "awesome": true, "clever": true,
	"smart": true, "dumb": true, "quick": true, "slow": true, "ugly": true,
	"useful": true, "confusing": true, "weird": true, "helpful": true, "nice": true,
	"simple": true, "hard": true, "cool": true, "agile": true, "responsive": true,
	// everyday adjectives
	"big": true, "small": true, "long": true, "short": true, "happy": true,
	"sad": true, "easy": true, "new": true, "old": true, "young": true,
	"strong": true, "weak": true, "bright": true, "dark": true, "loud": true,
	"quiet": true, "fast": true, "complex": true, "early": true, "late": true,
	"warm": true, "cold": true,
}

var exclaims = map[string]bool{
	"wow": true, "yay": true, "oops": true, "hey": true, "yeah": true,
	"woo": true, "whoa": true, "huh": true, "ugh": true, "nope": true,
	"nice": true, "heck": true, "hell": true, "damn": true, "darn": true,
	"crap": true, "woot": true,
}

var connectors = map[string]bool{
	"and": true, ",": true,
}

// Classify looks up a word's category, case-insensitively. When a word sits
// in more than one set the first checked category wins: verb, noun,
// adjective, exclaim. An inflected word ("fixing", "bugs") classifies as its
// base form; only the one suffix that Inflect would re-apply is stripped.
func Classify(word string) Category {
	lower := strings.ToLower(word)
	if c := lookup(lower); c != Unclassified {
		return c
	}
	return lookup(stripInflection(lower))
}

func lookup(lower string) Category {
	switch {
	case verbs[lower]:
		return Verb
	case nouns[lower]:
		return Noun
	case adjectives[lower]:
		return Adjective
	case exclaims[lower]:
		return Exclaim
	}
	return Unclassified
}

// stripInflection removes the single suffix Inflect recognizes, in the same
// priority order, so a word classified through its base form inflects back
// to its original shape.
func stripInflection(lower string) string {
	switch {
	case strings.HasSuffix(lower, "ing"):
		return strings.TrimSuffix(lower, "ing")
	case strings.HasSuffix(lower, "ed"):
		return strings.TrimSuffix(lower, "ed")
	case strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss"):
		return strings.TrimSuffix(lower, "s")
	}
	return lower
}

// IsVerb reports verb-set membership regardless of other sets, unlike
// Classify which stops at the first match. Inflected forms count.
func IsVerb(word string) bool {
	lower := strings.ToLower(word)
	return verbs[lower] || verbs[stripInflection(lower)]
}

// IsNoun reports noun-set membership regardless of other sets. Inflected
// forms count.
func IsNoun(word string) bool {
	lower := strings.ToLower(word)
	return nouns[lower] || nouns[stripInflection(lower)]
}

// IsConnector reports whether a token links its neighbors ("and" or a comma).
func IsConnector(token string) bool {
	return connectors[strings.ToLower(token)]
}

// Words returns the sorted members of a category, or nil for Unclassified.
func Words(c Category) []string {
	var set map[string]bool
	switch c {
	case Verb:
		set = verbs
	case Noun:
		set = nouns
	case Adjective:
		set = adjectives
	case Exclaim:
		set = exclaims
	default:
		return nil
	}
	words := lo.Keys(set)
	sort.Strings(words)
	return words
}
