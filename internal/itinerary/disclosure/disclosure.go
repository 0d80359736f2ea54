// Package disclosure is the wizard section state machine: later sections are
// revealed only once every earlier section validates.
package disclosure

// SectionState is the disclosure state of one wizard section
type SectionState struct {
	Name     string `json:"name"`
	Enabled  bool   `json:"enabled"`
	Open     bool   `json:"open"`
	Complete bool   `json:"complete"`
}

// State is the ordered disclosure state of a wizard
type State struct {
	Sections []SectionState `json:"sections"`
}

// Initial returns the state before any validation ran: only the first
// section is enabled and open
func Initial(order []string) State {
	sections := make([]SectionState, len(order))
	for i, name := range order {
		sections[i] = SectionState{Name: name, Enabled: i == 0, Open: i == 0}
	}
	return State{Sections: sections}
}

// Next computes the state that follows prev once the section validations
// changed. Section i is enabled iff every earlier section is complete. The
// section the user had open stays open while it is enabled and has not just
// become complete; otherwise the first enabled incomplete section opens.
// Next never mutates prev.
func Next(prev State, order []string, validations map[string]bool) State {
	prevOpen, wasComplete := prev.openSection()

	sections := make([]SectionState, len(order))
	allBefore := true
	for i, name := range order {
		complete := validations[name]
		sections[i] = SectionState{
			Name:     name,
			Enabled:  allBefore,
			Complete: complete,
		}
		allBefore = allBefore && complete
	}

	open := -1
	if idx := indexOf(sections, prevOpen); idx >= 0 && sections[idx].Enabled {
		justCompleted := sections[idx].Complete && !wasComplete
		if !justCompleted {
			open = idx
		}
	}
	if open < 0 {
		open = firstEnabledIncomplete(sections)
	}
	if open < 0 {
		// Everything is complete: the user keeps the section they had open
		if idx := indexOf(sections, prevOpen); idx >= 0 {
			open = idx
		}
	}
	if open >= 0 {
		sections[open].Open = true
	}

	return State{Sections: sections}
}

// Open makes name the open section. It reports false and returns state
// unchanged when name is unknown or not yet enabled.
func Open(state State, name string) (State, bool) {
	idx := indexOf(state.Sections, name)
	if idx < 0 || !state.Sections[idx].Enabled {
		return state, false
	}

	sections := make([]SectionState, len(state.Sections))
	copy(sections, state.Sections)
	for i := range sections {
		sections[i].Open = i == idx
	}
	return State{Sections: sections}, true
}

// OpenSection returns the name of the open section, or ""
func (s State) OpenSection() string {
	name, _ := s.openSection()
	return name
}

// Equal reports whether both states are identical
func (s State) Equal(other State) bool {
	if len(s.Sections) != len(other.Sections) {
		return false
	}
	for i := range s.Sections {
		if s.Sections[i] != other.Sections[i] {
			return false
		}
	}
	return true
}

func (s State) openSection() (string, bool) {
	for _, section := range s.Sections {
		if section.Open {
			return section.Name, section.Complete
		}
	}
	return "", false
}

func indexOf(sections []SectionState, name string) int {
	if name == "" {
		return -1
	}
	for i, section := range sections {
		if section.Name == name {
			return i
		}
	}
	return -1
}

func firstEnabledIncomplete(sections []SectionState) int {
	for i, section := range sections {
		if section.Enabled && !section.Complete {
			return i
		}
	}
	return -1
}
