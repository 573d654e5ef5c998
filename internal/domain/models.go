package domain

import "strings"

// Node is one entry of a host's raw content collection. Items handed out by
// the core are *Node values compared by pointer identity.
type Node struct {
	Kind string // tag-like category: "item", "link", "style", "#comment", ...
	Text string // text content
	Alt  string // explicit alternate text, preferred over Text when set
}

// NewItem creates a plain item node with the given text
func NewItem(text string) *Node {
	return &Node{Kind: KindItem, Text: text}
}

// Label returns the text used to identify the node to a reader
func (n *Node) Label() string {
	if n == nil {
		return ""
	}
	if n.Alt != "" {
		return n.Alt
	}
	return n.Text
}

// Node kinds with special meaning
const (
	KindItem     = "item"
	KindText     = "#text"
	KindComment  = "#comment"
	KindLink     = "link"
	KindScript   = "script"
	KindStyle    = "style"
	KindTemplate = "template"
)

// auxiliaryKinds never render as list entries
var auxiliaryKinds = map[string]bool{
	KindLink:     true,
	KindScript:   true,
	KindStyle:    true,
	KindTemplate: true,
	KindComment:  true,
}

// IsAuxiliary reports whether the node is a non-visible helper entry that
// must not be counted as an item.
func (n *Node) IsAuxiliary() bool {
	if n == nil {
		return true
	}
	if auxiliaryKinds[strings.ToLower(n.Kind)] {
		return true
	}
	// Bare text between elements only counts when it has something to show
	return n.Kind == KindText && strings.TrimSpace(n.Text) == ""
}

// Content is an ordered raw node collection. A Content value is never
// modified after creation; hosts publish changes by creating a new one.
type Content struct {
	nodes []*Node
}

// NewContent creates a content collection holding a copy of nodes
func NewContent(nodes ...*Node) *Content {
	return &Content{nodes: append([]*Node(nil), nodes...)}
}

// ContentFromTexts creates a content collection with one item per text
func ContentFromTexts(texts ...string) *Content {
	nodes := make([]*Node, 0, len(texts))
	for _, text := range texts {
		nodes = append(nodes, NewItem(text))
	}
	return &Content{nodes: nodes}
}

// Nodes returns the nodes in order. Callers must not modify the slice.
func (c *Content) Nodes() []*Node {
	if c == nil {
		return nil
	}
	return c.nodes
}

// Len returns the number of raw nodes
func (c *Content) Len() int {
	if c == nil {
		return 0
	}
	return len(c.nodes)
}

// Without returns a new collection with the given node removed
func (c *Content) Without(node *Node) *Content {
	nodes := make([]*Node, 0, c.Len())
	for _, n := range c.Nodes() {
		if n != node {
			nodes = append(nodes, n)
		}
	}
	return &Content{nodes: nodes}
}

// Orientation describes the axes a list can be navigated along
type Orientation string

const (
	OrientationHorizontal Orientation = "horizontal"
	OrientationVertical   Orientation = "vertical"
	OrientationBoth       Orientation = "both"
)

// Horizontal reports whether left/right navigation applies
func (o Orientation) Horizontal() bool {
	return o == OrientationHorizontal || o == OrientationBoth
}

// Vertical reports whether up/down navigation applies
func (o Orientation) Vertical() bool {
	return o == OrientationVertical || o == OrientationBoth
}

// ParseOrientation converts a config or flag value into an Orientation
func ParseOrientation(s string) (Orientation, bool) {
	switch Orientation(strings.ToLower(strings.TrimSpace(s))) {
	case OrientationHorizontal:
		return OrientationHorizontal, true
	case OrientationVertical, "":
		return OrientationVertical, true
	case OrientationBoth:
		return OrientationBoth, true
	}
	return "", false
}

// Direction is an abstract navigation intent
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionHome  Direction = "home"
	DirectionEnd   Direction = "end"
)
