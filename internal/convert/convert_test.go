package convert

import (
	"errors"
	"os"
	"strings"
	"testing"

	"mindbridge/internal/freemind"
	"mindbridge/internal/mindmap"
)

func TestFreemindToPlantUML(t *testing.T) {
	mmContent, err := os.ReadFile("testdata/sample.mm")
	if err != nil {
		t.Fatalf("Failed to read mm fixture: %v", err)
	}
	expectedPuml, err := os.ReadFile("testdata/sample.puml")
	if err != nil {
		t.Fatalf("Failed to read puml fixture: %v", err)
	}

	actual, err := FreemindToPlantUML(string(mmContent))
	if err != nil {
		t.Fatalf("FreemindToPlantUML failed: %v", err)
	}

	expected := normalizeWhitespace(string(expectedPuml))
	got := normalizeWhitespace(actual)
	if got != expected {
		t.Errorf("Conversion mismatch.\n\nExpected:\n%s\n\nGot:\n%s", expected, got)
		showDiff(t, expected, got)
	}
}

func TestPlantUMLToFreemind(t *testing.T) {
	pumlContent, err := os.ReadFile("testdata/sample.puml")
	if err != nil {
		t.Fatalf("Failed to read puml fixture: %v", err)
	}
	expectedMm, err := os.ReadFile("testdata/sample.mm")
	if err != nil {
		t.Fatalf("Failed to read mm fixture: %v", err)
	}

	actual, err := PlantUMLToFreemind(string(pumlContent), freemind.WriteOptions{})
	if err != nil {
		t.Fatalf("PlantUMLToFreemind failed: %v", err)
	}

	expected := normalizeWhitespace(string(expectedMm))
	got := normalizeWhitespace(actual)
	if got != expected {
		t.Errorf("Conversion mismatch.\n\nExpected:\n%s\n\nGot:\n%s", expected, got)
		showDiff(t, expected, got)
	}
}

func TestNestedLeavesToMarkerLines(t *testing.T) {
	// One root with two nested leaves becomes exactly 3 node lines at
	// star depths 1, 2, 2
	input := `<map><node TEXT="Root"><node TEXT="A"/><node TEXT="B"/></node></map>`

	out, err := FreemindToPlantUML(input)
	if err != nil {
		t.Fatalf("FreemindToPlantUML failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	want := []string{"@startmindmap", "* Root", "** A", "** B", "@endmindmap"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines %v, want %d", len(lines), lines, len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestEmptyInput(t *testing.T) {
	if _, err := FreemindToPlantUML(""); err == nil {
		t.Error("FreemindToPlantUML(\"\") expected error, got nil")
	}

	_, err := PlantUMLToFreemind("", freemind.WriteOptions{})
	if err == nil {
		t.Fatal("PlantUMLToFreemind(\"\") expected error, got nil")
	}
	var perr *mindmap.ParseError
	if !errors.As(err, &perr) {
		t.Errorf("error type = %T, want *mindmap.ParseError", err)
	}
}

func TestNoPartialOutputOnFailure(t *testing.T) {
	out, err := PlantUMLToFreemind("no nodes here", freemind.WriteOptions{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if out != "" {
		t.Errorf("output on failure = %q, want empty", out)
	}
}

// Helper functions

func normalizeWhitespace(s string) string {
	// Normalize line endings and trim trailing whitespace
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func showDiff(t *testing.T, expected, actual string) {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	maxLines := len(expectedLines)
	if len(actualLines) > maxLines {
		maxLines = len(actualLines)
	}

	t.Log("\nLine-by-line diff:")
	for i := 0; i < maxLines; i++ {
		var expLine, actLine string
		if i < len(expectedLines) {
			expLine = expectedLines[i]
		}
		if i < len(actualLines) {
			actLine = actualLines[i]
		}

		if expLine != actLine {
			t.Logf("Line %d:\n  Expected: %q\n  Actual:   %q", i+1, expLine, actLine)
		}
	}
}
