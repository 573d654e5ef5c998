package items

import (
	"listkit/internal/domain"
	"listkit/internal/trait"
)

// ContentToItems derives the item list from the component's raw content.
// The result is memoized on the identity of the content collection, so
// consumers can compare successive results by reference.
type ContentToItems struct {
	host     trait.Host
	content  *domain.Content
	items    []*domain.Node
	computed bool
}

// New creates the trait
func New() *ContentToItems {
	return &ContentToItems{}
}

// Name identifies the trait in logs
func (c *ContentToItems) Name() string {
	return "content-to-items"
}

// Compose provides Items and turns content changes into item changes
func (c *ContentToItems) Compose(host trait.Host, next trait.Chain) trait.Chain {
	c.host = host
	return trait.Chain{
		Items: c.Items,
		ContentChanged: func() {
			next.ContentChanged()
			c.host.Chain().ItemsChanged()
		},
	}
}

// Items returns the substantive nodes of the current content
func (c *ContentToItems) Items() []*domain.Node {
	content := c.host.State().Content
	if c.computed && content == c.content {
		return c.items
	}
	c.content = content
	c.items = Substantive(content.Nodes())
	c.computed = true
	return c.items
}

// Substantive filters out auxiliary nodes, keeping order
func Substantive(nodes []*domain.Node) []*domain.Node {
	result := make([]*domain.Node, 0, len(nodes))
	for _, node := range nodes {
		if !node.IsAuxiliary() {
			result = append(result, node)
		}
	}
	return result
}

// IndexOf returns the position of item in items by identity, or -1
func IndexOf(items []*domain.Node, item *domain.Node) int {
	if item == nil {
		return -1
	}
	for i, candidate := range items {
		if candidate == item {
			return i
		}
	}
	return -1
}
