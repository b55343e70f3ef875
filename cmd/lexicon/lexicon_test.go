package lexicon

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunTable(t *testing.T) {
	var out bytes.Buffer
	if err := Run(&Params{}, &out); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	got := out.String()
	for _, want := range []string{"verb", "noun", "adjective", "exclaim", "smurfy", "Smurf!"} {
		if !strings.Contains(got, want) {
			t.Errorf("table output missing %q:\n%s", want, got)
		}
	}
}

func TestRunAll(t *testing.T) {
	var out bytes.Buffer
	if err := Run(&Params{All: true, Category: "exclaim"}, &out); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	got := out.String()
	for _, want := range []string{"wow", "yay", "oops"} {
		if !strings.Contains(got, want) {
			t.Errorf("word dump missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "fix") {
		t.Errorf("exclaim dump should not contain verbs:\n%s", got)
	}
}

func TestRunCategoryFilter(t *testing.T) {
	var out bytes.Buffer
	if err := Run(&Params{Category: "Verb"}, &out); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "verb") {
		t.Errorf("filtered output missing the verb row:\n%s", got)
	}
	if strings.Contains(got, "adjective") {
		t.Errorf("filtered output should not contain other categories:\n%s", got)
	}
}

func TestRunUnknownCategory(t *testing.T) {
	var out bytes.Buffer
	if err := Run(&Params{Category: "adverb"}, &out); err == nil {
		t.Errorf("expected an error for an unknown category")
	}
}
