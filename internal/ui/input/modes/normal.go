package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"listkit/internal/ui/input/types"
)

// Bindings are the application keys normal mode intercepts before the rest
// reach the list component.
type Bindings struct {
	Find        key.Binding
	Goto        key.Binding
	Wrap        key.Binding
	Required    key.Binding
	Orientation key.Binding
	Remove      key.Binding
	Help        key.Binding
	EventLog    key.Binding
	Quit        key.Binding
}

// Translator turns a key message into component key actions
type Translator func(msg tea.KeyMsg) []types.Action

type NormalMode struct {
	bindings  Bindings
	translate Translator
}

func NewNormalMode(bindings Bindings, translate Translator) *NormalMode {
	return &NormalMode{bindings: bindings, translate: translate}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	b := m.bindings
	switch {
	case msg.Type == tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, b.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true

	case key.Matches(msg, b.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case key.Matches(msg, b.EventLog):
		return []types.Action{types.OpenEventLogAction{}}, true

	case key.Matches(msg, b.Find):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFind}}, true

	case key.Matches(msg, b.Goto):
		// Goto needs something to go to
		if ctx.TotalItems() == 0 {
			return nil, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeGoto}}, true

	case key.Matches(msg, b.Wrap):
		return []types.Action{types.ToggleWrapAction{}}, true

	case key.Matches(msg, b.Required):
		return []types.Action{types.ToggleRequiredAction{}}, true

	case key.Matches(msg, b.Orientation):
		return []types.Action{types.CycleOrientationAction{}}, true

	case key.Matches(msg, b.Remove):
		if ctx.SelectedIndex() < 0 {
			return nil, true
		}
		return []types.Action{types.RemoveItemAction{}}, true
	}

	actions := m.translate(msg)
	return actions, len(actions) > 0
}
