package detail

import "github.com/Makepad-fr/itemdetail/internal/model"

// ControlToggle returns a new state in which name is the only open entry.
// Names absent from state are not added, so an unknown name closes everything.
func ControlToggle(state model.ToggleState, name string) model.ToggleState {
	next := make(model.ToggleState, len(state))
	for k := range state {
		next[k] = k == name
	}
	return next
}

// ComponentVisible is the visibility class for the named control.
func ComponentVisible(state model.ToggleState, name string) string {
	if state != nil && state[name] {
		return "visible"
	}
	return "hidden"
}
