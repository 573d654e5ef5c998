package types

import "listkit/internal/domain"

// KeyAction forwards a key press to the list component
type KeyAction struct {
	Key domain.Key
}

func (a KeyAction) Type() string { return "key" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // Optional initial text for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
	Mode Mode
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// List policy actions
type ToggleWrapAction struct{}

func (a ToggleWrapAction) Type() string { return "toggle_wrap" }

type ToggleRequiredAction struct{}

func (a ToggleRequiredAction) Type() string { return "toggle_required" }

type CycleOrientationAction struct{}

func (a CycleOrientationAction) Type() string { return "cycle_orientation" }

// RemoveItemAction removes the selected item from the content
type RemoveItemAction struct{}

func (a RemoveItemAction) Type() string { return "remove_item" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

// OpenEventLogAction shows the change notification log in the pager
type OpenEventLogAction struct{}

func (a OpenEventLogAction) Type() string { return "open_event_log" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for Esc
}

func (a QuitAction) Type() string { return "quit" }
