package mindmap

import "fmt"

// ParseError reports input from which no mind map could be built.
// Minor irregularities (missing attributes, odd depth jumps) are
// recovered in place and never surface as a ParseError.
type ParseError struct {
	Format string // "plantuml" or "freemind"
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %s", e.Format, e.Reason)
}
