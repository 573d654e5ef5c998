package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listkit/internal/domain"
	"listkit/internal/ui/input/types"
)

type fakeContext struct {
	index int
	total int
}

func (c fakeContext) SelectedIndex() int    { return c.index }
func (c fakeContext) TotalItems() int       { return c.total }
func (c fakeContext) SelectedLabel() string { return "" }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []domain.Key
	}{
		{"arrow", tea.KeyMsg{Type: tea.KeyDown}, []domain.Key{domain.NamedKey(domain.KeyDown)}},
		{"alt arrow", tea.KeyMsg{Type: tea.KeyUp, Alt: true}, []domain.Key{{Name: domain.KeyUp, Alt: true}}},
		{"ctrl arrow as meta", tea.KeyMsg{Type: tea.KeyCtrlLeft}, []domain.Key{{Name: domain.KeyLeft, Meta: true}}},
		{"page", tea.KeyMsg{Type: tea.KeyPgDown}, []domain.Key{domain.NamedKey(domain.KeyPageDown)}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, []domain.Key{domain.NamedKey(domain.KeyBackspace)}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []domain.Key{{Name: domain.KeySpace, Rune: ' '}}},
		{"rune", runes("b"), []domain.Key{domain.RuneKey('b')}},
		{"paste", runes("ab"), []domain.Key{domain.RuneKey('a'), domain.RuneKey('b')}},
		{"unused", tea.KeyMsg{Type: tea.KeyTab}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TranslateKey(tt.msg))
		})
	}
}

func TestNormalModeForwardsKeysToList(t *testing.T) {
	h := New(DefaultKeyMap())

	actions, _ := h.HandleKey(runes("b"), fakeContext{index: -1, total: 3})

	assert.Equal(t, []types.Action{types.KeyAction{Key: domain.RuneKey('b')}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestNormalModeBindings(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want types.Action
	}{
		{"quit", tea.KeyMsg{Type: tea.KeyEsc}, types.QuitAction{}},
		{"force quit", tea.KeyMsg{Type: tea.KeyCtrlC}, types.QuitAction{Force: true}},
		{"help", tea.KeyMsg{Type: tea.KeyF1}, types.ToggleHelpAction{}},
		{"event log", tea.KeyMsg{Type: tea.KeyF2}, types.OpenEventLogAction{}},
		{"wrap", tea.KeyMsg{Type: tea.KeyCtrlW}, types.ToggleWrapAction{}},
		{"required", tea.KeyMsg{Type: tea.KeyCtrlR}, types.ToggleRequiredAction{}},
		{"orientation", tea.KeyMsg{Type: tea.KeyCtrlO}, types.CycleOrientationAction{}},
		{"remove", tea.KeyMsg{Type: tea.KeyDelete}, types.RemoveItemAction{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(DefaultKeyMap())
			actions, _ := h.HandleKey(tt.msg, fakeContext{index: 0, total: 3})
			assert.Equal(t, []types.Action{tt.want}, actions)
		})
	}
}

func TestRemoveWithoutSelectionIsIgnored(t *testing.T) {
	h := New(DefaultKeyMap())

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyDelete}, fakeContext{index: -1, total: 3})

	assert.Empty(t, actions)
}

func TestFindModeFlow(t *testing.T) {
	h := New(DefaultKeyMap())
	ctx := fakeContext{index: -1, total: 3}

	actions, cmd := h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlF}, ctx)
	assert.Empty(t, actions)
	assert.NotNil(t, cmd)
	require.Equal(t, types.ModeFind, h.CurrentMode())
	assert.Equal(t, "Find: ", h.Prompt())
	require.NotNil(t, h.TextInput())

	actions, _ = h.HandleKey(runes("ba"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "ba", Mode: types.ModeFind}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.SubmitTextAction{Text: "ba", Mode: types.ModeFind}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
}

func TestGotoModeCancel(t *testing.T) {
	h := New(DefaultKeyMap())
	ctx := fakeContext{index: 0, total: 3}

	h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlG}, ctx)
	require.Equal(t, types.ModeGoto, h.CurrentMode())

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, []types.Action{types.CancelTextAction{}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestGotoNeedsItems(t *testing.T) {
	h := New(DefaultKeyMap())

	h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlG}, fakeContext{index: -1, total: 0})

	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()

	assert.NotEmpty(t, km.ShortHelp())
	for _, group := range km.FullHelp() {
		for _, b := range group {
			assert.NotEmpty(t, b.Help().Key)
		}
	}
}
