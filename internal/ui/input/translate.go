package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"listkit/internal/domain"
)

// TranslateKey converts a terminal key message into the keys the list
// component understands. Pasted text yields one key per rune. Keys the
// component has no use for yield nothing.
//
// Terminals do not report the Meta modifier, so ctrl+left and ctrl+right
// stand in for it.
func TranslateKey(msg tea.KeyMsg) []domain.Key {
	named := func(name string) []domain.Key {
		return []domain.Key{{Name: name, Alt: msg.Alt}}
	}

	switch msg.Type {
	case tea.KeyUp:
		return named(domain.KeyUp)
	case tea.KeyDown:
		return named(domain.KeyDown)
	case tea.KeyLeft:
		return named(domain.KeyLeft)
	case tea.KeyRight:
		return named(domain.KeyRight)
	case tea.KeyCtrlLeft:
		return []domain.Key{{Name: domain.KeyLeft, Meta: true}}
	case tea.KeyCtrlRight:
		return []domain.Key{{Name: domain.KeyRight, Meta: true}}
	case tea.KeyHome, tea.KeyCtrlHome:
		return named(domain.KeyHome)
	case tea.KeyEnd, tea.KeyCtrlEnd:
		return named(domain.KeyEnd)
	case tea.KeyPgUp:
		return named(domain.KeyPageUp)
	case tea.KeyPgDown:
		return named(domain.KeyPageDown)
	case tea.KeyBackspace:
		return named(domain.KeyBackspace)
	case tea.KeySpace:
		return []domain.Key{{Name: domain.KeySpace, Rune: ' ', Alt: msg.Alt}}
	case tea.KeyRunes:
		keys := make([]domain.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			k := domain.RuneKey(r)
			k.Alt = msg.Alt
			keys = append(keys, k)
		}
		return keys
	}
	return nil
}
