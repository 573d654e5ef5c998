package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"listkit/internal/domain"
	"listkit/internal/state"
	"listkit/internal/trait"
	"listkit/internal/ui/logic"
)

// Lines and columns taken by everything except the list itself
const (
	chromeLines   = 7 // padding 2, title 2, status 2, help 1
	promptLines   = 1
	ChromeColumns = 4
)

// ListHeight returns the number of rows left for the list in a terminal of
// the given height.
func ListHeight(height int, hasPrompt bool) int {
	h := height - chromeLines
	if hasPrompt {
		h -= promptLines
	}
	return max(h, 1)
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width    int
	Height   int
	Items    []*domain.Node
	List     state.State // last rendered component snapshot
	Viewport *logic.Viewport
	Prompt   string
	Input    string
	Status   string
	IsError  bool
	HelpView string
	Events   int
}

// Renderer handles all view rendering
type Renderer struct {
	styles     *Styles
	itemRender *ItemRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:     styles,
		itemRender: NewItemRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(vs ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(vs))
	content.WriteString("\n")

	if len(vs.Items) == 0 {
		content.WriteString(r.styles.Dim.Render("No items."))
	} else if trait.AxisFor(vs.List.Orientation) == trait.AxisHorizontal {
		content.WriteString(r.renderStrip(vs))
	} else {
		content.WriteString(r.renderRows(vs))
	}
	content.WriteString("\n")

	content.WriteString(r.renderStatus(vs))

	if vs.Prompt != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Prompt.Render(vs.Prompt))
		content.WriteString(vs.Input)
	}

	if vs.HelpView != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(vs.HelpView))
	}

	mainStyle := r.styles.Main
	if vs.Height > 0 {
		mainStyle = mainStyle.MaxHeight(vs.Height)
	}
	return mainStyle.Render(content.String())
}

func (r *Renderer) renderTitle(vs ViewState) string {
	logo := r.styles.Title.Render("listkit")

	s := vs.List
	flags := []string{
		string(s.Orientation),
		r.flag("wrap", s.SelectionWraps),
		r.flag("required", s.SelectionRequired),
	}
	right := strings.Join(flags, "  ")

	termWidth := vs.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	padding := termWidth - ChromeColumns - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, logo, strings.Repeat(" ", padding), right)
}

func (r *Renderer) flag(name string, on bool) string {
	if on {
		return r.styles.FlagOn.Render("● " + name)
	}
	return r.styles.FlagOff.Render("○ " + name)
}

func (r *Renderer) renderRows(vs ViewState) string {
	width := max(vs.Width-ChromeColumns, 0)
	first, last := vs.Viewport.VisibleRange()
	lines := make([]string, 0, last-first)
	for i := first; i < last && i < len(vs.Items); i++ {
		lines = append(lines, r.itemRender.RenderRow(vs.Items[i], i, i == vs.List.SelectedIndex, width))
	}
	return strings.Join(lines, "\n")
}

// renderStrip renders the visible columns of a horizontal list. Cells cut by
// an edge are shortened to the part that fits.
func (r *Renderer) renderStrip(vs ViewState) string {
	v := vs.Viewport
	left := v.ColOffset()
	right := left + v.Width()

	var b strings.Builder
	for i, item := range vs.Items {
		bounds, ok := v.ItemBounds(i, trait.AxisHorizontal)
		if !ok {
			break
		}
		start, end := int(bounds.Start), int(bounds.End())
		if end <= left {
			continue
		}
		if start >= right {
			break
		}
		cell := r.itemRender.RenderCell(item, i == vs.List.SelectedIndex)
		switch {
		case start < left:
			b.WriteString(r.styles.Dim.Render(runewidth.FillLeft("…", end-left)))
		case end > right:
			pad := strings.Repeat(" ", logic.CellPadding)
			b.WriteString(r.styles.Item.Render(runewidth.Truncate(pad+item.Label(), right-start, "…")))
		default:
			b.WriteString(cell)
		}
	}
	return b.String()
}

func (r *Renderer) renderStatus(vs ViewState) string {
	s := vs.List
	parts := []string{}

	if s.SelectedIndex >= 0 {
		parts = append(parts, fmt.Sprintf("#%d of %d", s.SelectedIndex, len(vs.Items)))
	} else {
		parts = append(parts, fmt.Sprintf("none of %d", len(vs.Items)))
	}

	if trait.AxisFor(s.Orientation) == trait.AxisVertical && vs.Viewport != nil {
		first, last := vs.Viewport.VisibleRange()
		if first > 0 {
			parts = append(parts, r.styles.Scroll.Render(fmt.Sprintf("↑%d", first)))
		}
		if more := len(vs.Items) - last; more > 0 {
			parts = append(parts, r.styles.Scroll.Render(fmt.Sprintf("↓%d", more)))
		}
	}

	nav := ""
	if s.CanSelectPrevious {
		nav += "◂"
	}
	if s.CanSelectNext {
		nav += "▸"
	}
	if nav != "" {
		parts = append(parts, nav)
	}

	if s.TypedPrefix != "" {
		parts = append(parts, r.styles.Prefix.Render(fmt.Sprintf("%q", s.TypedPrefix)))
	}
	if vs.Events > 0 {
		parts = append(parts, fmt.Sprintf("%d events", vs.Events))
	}
	if vs.Status != "" {
		if vs.IsError {
			parts = append(parts, r.styles.StatusError.Render(vs.Status))
		} else {
			parts = append(parts, vs.Status)
		}
	}

	return r.styles.Status.Render(strings.Join(parts, "  "))
}
