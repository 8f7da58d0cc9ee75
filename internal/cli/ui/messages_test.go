package ui

import (
	"strings"
	"testing"
)

func TestFormatWarning(t *testing.T) {
	out := Format(Options{
		Level:       LevelWarning,
		Context:     "qt not found",
		Problem:     "nothing detected",
		Suggestions: []string{"install Qt", "set the path manually"},
		NoColor:     true,
	})

	if !strings.Contains(out, "QT NOT FOUND: nothing detected") {
		t.Errorf("expected upper-cased context header, got %q", out)
	}
	if !strings.Contains(out, "→ install Qt") {
		t.Errorf("expected suggestion lines, got %q", out)
	}
}

func TestFormatWithoutContext(t *testing.T) {
	out := Format(Options{Level: LevelInfo, Problem: "just info", NoColor: true})

	if !strings.Contains(out, "just info") {
		t.Errorf("expected problem text, got %q", out)
	}
	if strings.Contains(out, ":") {
		t.Errorf("expected no context separator, got %q", out)
	}
}

func TestQtNotFoundMentionsRemediation(t *testing.T) {
	out := QtNotFound("qtweb.json")

	for _, want := range []string{"Install Qt 6", "qtweb.json", "build script"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in remediation message, got %q", want, out)
		}
	}
}
