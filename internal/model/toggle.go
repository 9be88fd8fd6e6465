package model

// ToggleState records which auxiliary control of the detail panel is open.
// After a ControlToggle application at most one entry is true.
type ToggleState map[string]bool

// NewToggleState returns a state with every name closed.
func NewToggleState(names ...string) ToggleState {
	st := make(ToggleState, len(names))
	for _, n := range names {
		st[n] = false
	}
	return st
}

