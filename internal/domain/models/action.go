package models

// ActionKind enumerates the watchlist actions a dashboard session accepts.
type ActionKind string

const (
	ActionMoveUp   ActionKind = "move_up"
	ActionMoveDown ActionKind = "move_down"
	ActionDelete   ActionKind = "delete"
	ActionSelect   ActionKind = "select"
)

// Action is the tagged variant parsed once at the HTTP boundary.
// Index applies to move actions, Ticker to delete/select.
type Action struct {
	Kind   ActionKind
	Index  int
	Ticker string
}
