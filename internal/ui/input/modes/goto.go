package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"listkit/internal/ui/input/types"
)

// GotoMode selects the item at a typed index
type GotoMode struct {
	TextInputMode
}

func NewGotoMode(ti *textinput.Model) *GotoMode {
	return &GotoMode{
		TextInputMode: NewTextInputMode(types.ModeGoto, "goto", "Go to index: ", ti),
	}
}
