package freemind

import (
	"strconv"
	"strings"

	"mindbridge/internal/mindmap"
)

// DefaultVersion is the map version attribute written when none is configured
const DefaultVersion = "freeplane 1.9.13"

// WriteOptions control the generated XML.
type WriteOptions struct {
	// Version is the <map> version attribute; DefaultVersion if empty.
	Version string
	// FoldDepth folds nodes with children at or beyond this depth
	// (FOLDED="true"). Zero disables folding.
	FoldDepth int
	// EmitIDs adds an ID attribute to every node. IDs are a per-write
	// sequence so output stays deterministic.
	EmitIDs bool
}

// Write renders a mind map as Freemind/Freeplane XML, one element per
// line, nodes in pre-order. Leaves without hyperlinks self-close;
// hyperlinks emit a hook child element.
func Write(m *mindmap.Map, opts WriteOptions) string {
	version := opts.Version
	if version == "" {
		version = DefaultVersion
	}

	var b strings.Builder
	b.WriteString(`<map version="` + escapeAttr(version) + "\">\n")
	seq := 0
	for _, root := range m.Roots {
		writeNode(&b, root, &seq, opts)
	}
	b.WriteString("</map>\n")
	return b.String()
}

func writeNode(b *strings.Builder, n *mindmap.Node, seq *int, opts WriteOptions) {
	folded := "false"
	if opts.FoldDepth > 0 && n.Depth >= opts.FoldDepth && len(n.Children) > 0 {
		folded = "true"
	}

	b.WriteString(`<node TEXT="` + escapeAttr(n.Text) + `" FOLDED="` + folded + `"`)
	if opts.EmitIDs {
		*seq++
		b.WriteString(` ID="ID_` + strconv.Itoa(*seq) + `"`)
	}

	if n.Link == "" && len(n.Children) == 0 {
		b.WriteString("/>\n")
		return
	}

	b.WriteString(">\n")
	if n.Link != "" {
		b.WriteString(`<hook NAME="ExternalObject" URI="` + escapeAttr(n.Link) + "\"/>\n")
	}
	for _, child := range n.Children {
		writeNode(b, child, seq, opts)
	}
	b.WriteString("</node>\n")
}

// escapeAttr escapes an attribute value: the five XML entities plus
// embedded newlines as character references so multiline labels survive
var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
	"\n", "&#10;",
)

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
