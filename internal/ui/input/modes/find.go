package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"listkit/internal/ui/input/types"
)

// FindMode selects the first item starting with the typed text as it is typed
type FindMode struct {
	TextInputMode
}

func NewFindMode(ti *textinput.Model) *FindMode {
	return &FindMode{
		TextInputMode: NewTextInputMode(types.ModeFind, "find", "Find: ", ti),
	}
}
