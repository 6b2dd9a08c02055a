package core

// Action is a semantic input intent, abstracted from physical keys and
// mouse clicks so the controller never sees raw terminal events.
type Action int

const (
	ActionNone       Action = iota
	ActionOption1           // 1, or a click on the first option
	ActionOption2           // 2, or a click on the second option
	ActionFocusLeft         // Left, h
	ActionFocusRight        // Right, l
	ActionConfirm           // Enter, Space - tap the focused option
	ActionRestart           // R - new play-through from the ending screen
	ActionScreenshot        // Ctrl+S - save the screen as text
	ActionHelp              // ? - toggle full help
	ActionQuit              // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionOption1:
		return "Option1"
	case ActionOption2:
		return "Option2"
	case ActionFocusLeft:
		return "FocusLeft"
	case ActionFocusRight:
		return "FocusRight"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionScreenshot:
		return "Screenshot"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
