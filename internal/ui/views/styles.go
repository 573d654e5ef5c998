package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Prefix      lipgloss.Style
	Prompt      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Scroll      lipgloss.Style
	Item        lipgloss.Style
	Selected    lipgloss.Style
	Alt         lipgloss.Style
	FlagOn      lipgloss.Style
	FlagOff     lipgloss.Style
	StatusError lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Prefix:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // yellow
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Help:        lipgloss.NewStyle().Faint(true),
		Main:        lipgloss.NewStyle().Padding(1, 2),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Item:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Background(lipgloss.Color("238")).Bold(true),
		Alt:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		FlagOn:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		FlagOff:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
	}
}
