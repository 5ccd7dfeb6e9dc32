package freemind

import (
	"encoding/xml"
	"io"
	"strings"

	"mindbridge/internal/mindmap"
)

// Parse converts Freemind/Freeplane XML into a mind map tree.
//
// It scans tokens in a single pass with an open-element stack: element
// nesting is tree nesting, the TEXT attribute is the label and a hook
// child with a URI attribute becomes the node's hyperlink. Parsing is
// lenient: a node without TEXT gets an empty label, unknown elements
// are ignored and nesting left open at end of input is closed
// implicitly. It returns a ParseError only when no map or node element
// can be located.
func Parse(content string) (*mindmap.Map, error) {
	dec := xml.NewDecoder(strings.NewReader(content))
	dec.Strict = false

	m := mindmap.NewMap()
	var stack []*mindmap.Node
	seen := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			if seen {
				// Keep whatever was built before the malformed tail
				break
			}
			return nil, &mindmap.ParseError{Format: "freemind", Reason: err.Error()}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "map":
				seen = true
				m.Version = attrValue(t, "version")
			case "node":
				seen = true
				var node *mindmap.Node
				if len(stack) == 0 {
					node = m.AddRoot(attrValue(t, "TEXT"))
				} else {
					node = stack[len(stack)-1].AddChild(attrValue(t, "TEXT"))
				}
				stack = append(stack, node)
			case "hook":
				if uri := attrValue(t, "URI"); uri != "" && len(stack) > 0 {
					if n := stack[len(stack)-1]; n.Link == "" {
						n.Link = uri
					}
				}
			}
		case xml.EndElement:
			if t.Name.Local == "node" && len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if !seen {
		return nil, &mindmap.ParseError{Format: "freemind", Reason: "no map or node element found"}
	}
	return m, nil
}

func attrValue(el xml.StartElement, name string) string {
	for _, attr := range el.Attr {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}
