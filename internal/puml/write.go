package puml

import (
	"strings"

	"mindbridge/internal/mindmap"
)

// Start and End delimit every generated mindmap document
const (
	Start = "@startmindmap"
	End   = "@endmindmap"
)

// Write renders a mind map as PlantUML mindmap text. Nodes appear in
// pre-order, one line each, with depth+1 stars so a root carries a
// single star. Labels with embedded newlines use the ":text;" form and
// hyperlinks render as [[url]] or [[url label]].
func Write(m *mindmap.Map) string {
	var b strings.Builder
	b.WriteString(Start + "\n")
	m.Walk(func(n *mindmap.Node) {
		b.WriteString(formatLine(n))
		b.WriteString("\n")
	})
	b.WriteString(End + "\n")
	return b.String()
}

func formatLine(n *mindmap.Node) string {
	stars := strings.Repeat("*", n.Depth+1)

	text := n.Text
	if n.Link != "" {
		if text == n.Link {
			text = "[[" + n.Link + "]]"
		} else {
			text = "[[" + n.Link + " " + text + "]]"
		}
	}

	if strings.Contains(text, "\n") {
		return stars + " :" + text + ";"
	}
	return stars + " " + text
}
