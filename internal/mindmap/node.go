package mindmap

// Node represents a single mind map entry. Children are stored in
// document order; a node's depth is always its parent's depth + 1.
type Node struct {
	Text     string
	Link     string // external hyperlink URI, empty if none
	Depth    int
	Children []*Node
}

// AddChild appends a new child node with the given text and returns it
func (n *Node) AddChild(text string) *Node {
	child := &Node{Text: text, Depth: n.Depth + 1}
	n.Children = append(n.Children, child)
	return child
}

// Walk visits the node and all descendants in pre-order
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Map is a whole mind map document. Most documents have exactly one
// root node; Freemind allows several top-level nodes under <map>, so
// Roots is a slice.
type Map struct {
	Version string
	Roots   []*Node
}

// NewMap creates an empty mind map
func NewMap() *Map {
	return &Map{}
}

// AddRoot appends a new top-level node with the given text and returns it
func (m *Map) AddRoot(text string) *Node {
	root := &Node{Text: text, Depth: 0}
	m.Roots = append(m.Roots, root)
	return root
}

// Walk visits every node in the map in pre-order, roots in document order
func (m *Map) Walk(fn func(*Node)) {
	for _, root := range m.Roots {
		root.Walk(fn)
	}
}

// NodeCount returns the total number of nodes in the map
func (m *Map) NodeCount() int {
	count := 0
	m.Walk(func(*Node) { count++ })
	return count
}

// MaxDepth returns the deepest node depth in the map (0 for a bare root,
// -1 for an empty map)
func (m *Map) MaxDepth() int {
	max := -1
	m.Walk(func(n *Node) {
		if n.Depth > max {
			max = n.Depth
		}
	})
	return max
}

// LinkCount returns the number of nodes carrying a hyperlink
func (m *Map) LinkCount() int {
	count := 0
	m.Walk(func(n *Node) {
		if n.Link != "" {
			count++
		}
	})
	return count
}
