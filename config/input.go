package config

// ActionID represents a logical game action. Key bindings live with the
// frontend that polls them.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionRestart
	ActionMenuSelect
	ActionToggleHitboxes
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:           "none",
	ActionMoveLeft:       "move-left",
	ActionMoveRight:      "move-right",
	ActionMoveUp:         "move-up",
	ActionMoveDown:       "move-down",
	ActionRestart:        "restart",
	ActionMenuSelect:     "menu-select",
	ActionToggleHitboxes: "toggle-hitboxes",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}
