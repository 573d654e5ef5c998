package views

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"listkit/internal/domain"
	"listkit/internal/ui/logic"
)

// ItemRenderer handles rendering of list items
type ItemRenderer struct {
	styles *Styles
}

// NewItemRenderer creates a new item renderer
func NewItemRenderer(styles *Styles) *ItemRenderer {
	return &ItemRenderer{styles: styles}
}

// RenderRow renders one item as a full-width row of a vertical list
func (r *ItemRenderer) RenderRow(item *domain.Node, index int, isSelected bool, width int) string {
	marker := "  "
	if isSelected {
		marker = "▸ "
	}
	text := marker + item.Label()
	if item.Alt != "" && item.Text != "" && item.Alt != item.Text {
		text += " (" + item.Text + ")"
	}
	if width > 0 {
		text = runewidth.Truncate(text, width, "…")
		text = runewidth.FillRight(text, width)
	}
	if isSelected {
		return r.styles.Selected.Render(text)
	}
	return r.styles.Item.Render(text)
}

// RenderCell renders one item as a padded cell of a horizontal list
func (r *ItemRenderer) RenderCell(item *domain.Node, isSelected bool) string {
	pad := strings.Repeat(" ", logic.CellPadding)
	text := pad + item.Label() + pad
	if isSelected {
		return r.styles.Selected.Render(text)
	}
	return r.styles.Item.Render(text)
}
