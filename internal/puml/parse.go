package puml

import (
	"regexp"
	"strings"

	"mindbridge/internal/mindmap"
)

// nodeLineRe matches a mindmap node line: leading stars for depth, an
// optional legacy "_" marker suffix (treated like the plain form), then
// the label.
var nodeLineRe = regexp.MustCompile(`^\s*(\*+)_?\s*(.*)$`)

// linkRe matches the first [[url label]] or [[url]] hyperlink in a label
var linkRe = regexp.MustCompile(`\[\[(.*?)(?: (.*?))?\]\]`)

// Parse converts PlantUML mindmap text into a mind map tree.
//
// Star count gives the nesting level (one star = top level). Blank
// lines, ' comments, @startmindmap/@endmindmap delimiters and any other
// line without a leading star are skipped. A level jump past missing
// intermediate levels attaches the node to the nearest shallower
// ancestor. It returns a ParseError only when no node line exists.
func Parse(content string) (*mindmap.Map, error) {
	lines := strings.Split(content, "\n")
	m := mindmap.NewMap()
	var stack []*mindmap.Node

	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])

		if trimmed == "" || strings.HasPrefix(trimmed, "'") || strings.HasPrefix(trimmed, "@") {
			continue
		}

		match := nodeLineRe.FindStringSubmatch(lines[i])
		if match == nil {
			continue
		}

		level := len(match[1])
		text := strings.TrimSpace(match[2])

		// Multiline label: "* :first" continues until a line ending
		// with ";". The single-line form is "* :text;". End of input
		// terminates an unclosed label.
		if strings.HasPrefix(text, ":") {
			text = strings.TrimSpace(text[1:])
			if strings.HasSuffix(text, ";") {
				text = strings.TrimSuffix(text, ";")
			} else {
				parts := []string{text}
				for i+1 < len(lines) {
					i++
					next := strings.TrimRight(lines[i], " \t")
					if strings.HasSuffix(next, ";") {
						parts = append(parts, strings.TrimSuffix(strings.TrimSpace(next), ";"))
						break
					}
					parts = append(parts, next)
				}
				// Splitting trailing-newline input on "\n" leaves an
				// empty tail; it is not a continuation line.
				text = strings.TrimRight(strings.Join(parts, "\n"), "\n")
			}
		}

		text, link := extractLink(text)

		// Pop open ancestors until the top is shallower than this line
		for len(stack) >= level {
			stack = stack[:len(stack)-1]
		}

		var node *mindmap.Node
		if len(stack) == 0 {
			node = m.AddRoot(text)
		} else {
			node = stack[len(stack)-1].AddChild(text)
		}
		node.Link = link
		stack = append(stack, node)
	}

	if len(m.Roots) == 0 {
		return nil, &mindmap.ParseError{Format: "plantuml", Reason: "no node lines found"}
	}
	return m, nil
}

// extractLink pulls the first [[url label]] or [[url]] hyperlink out of
// a label. The label keeps the link text, or the url itself when no
// separate label is given. Only one hyperlink per node is supported.
func extractLink(text string) (label, url string) {
	match := linkRe.FindStringSubmatch(text)
	if match == nil {
		return text, ""
	}
	url = match[1]
	inner := match[2]
	if inner == "" {
		inner = url
	}
	return strings.Replace(text, match[0], inner, 1), url
}
