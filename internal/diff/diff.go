// Package diff reports what a format round trip cannot preserve.
package diff

import (
	"fmt"
	"strings"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"

	"mindbridge/internal/freemind"
	"mindbridge/internal/puml"
)

// Roundtrip parses content, renders it back in its own format (the
// canonical form), then sends it through the other format and back,
// and returns a unified diff between the two renderings. An empty
// result means the cross-format round trip is lossless for this input.
// Formatting noise in the input (indentation, comments) does not show
// up: both sides of the diff are canonical renderings.
func Roundtrip(name, content string, isFreemind bool, opts freemind.WriteOptions) (string, error) {
	var canonical, back string

	if isFreemind {
		m, err := freemind.Parse(content)
		if err != nil {
			return "", err
		}
		canonical = freemind.Write(m, opts)

		again, err := puml.Parse(puml.Write(m))
		if err != nil {
			return "", err
		}
		back = freemind.Write(again, opts)
	} else {
		m, err := puml.Parse(content)
		if err != nil {
			return "", err
		}
		canonical = puml.Write(m)

		again, err := freemind.Parse(freemind.Write(m, opts))
		if err != nil {
			return "", err
		}
		back = puml.Write(again)
	}

	return Unified(name, canonical, back), nil
}

// Unified returns a unified diff between before and after, empty when
// they are identical
func Unified(name, before, after string) string {
	edits := myers.ComputeEdits(span.URIFromPath(name), before, after)
	if len(edits) == 0 {
		return ""
	}
	return fmt.Sprint(gotextdiff.ToUnified(name, name+" (roundtrip)", before, edits))
}

// CountChanges returns the number of added or removed lines in a
// unified diff
func CountChanges(unified string) int {
	count := 0
	for _, line := range strings.Split(unified, "\n") {
		if len(line) == 0 {
			continue
		}
		if strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "---") {
			continue
		}
		if line[0] == '+' || line[0] == '-' {
			count++
		}
	}
	return count
}
