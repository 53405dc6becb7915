package app

import (
	"github.com/lixenwraith/flashcards/flashcard"
)

// View is the read-only side of State handed to renderers
type View interface {
	Page() Page
	Sets() []flashcard.Set
	SetNameInput() string
}

// State is the sole mutable state of the program
// It has one writer (InputHandler) and one reader (the renderer), alternating on one goroutine
type State struct {
	sets  []flashcard.Set // Insertion order is display order
	page  Page
	input []rune // Set name being typed, meaningful only on PageCreateSet
	exit  bool
}

// NewState creates state on PageSetList holding the given sets in order
func NewState(sets ...flashcard.Set) *State {
	s := &State{
		sets: make([]flashcard.Set, 0, len(sets)),
		page: PageSetList,
	}
	for _, set := range sets {
		s.AppendSet(set)
	}
	return s
}

// AppendSet takes ownership of set and appends it to the collection
func (s *State) AppendSet(set flashcard.Set) {
	s.sets = append(s.sets, set.Clone())
}

// --- View ---

// Page returns the active page
func (s *State) Page() Page {
	return s.page
}

// Sets returns a copy of the collection in display order
func (s *State) Sets() []flashcard.Set {
	out := make([]flashcard.Set, len(s.sets))
	for i, set := range s.sets {
		out[i] = set.Clone()
	}
	return out
}

// SetCount returns the number of sets without copying them
func (s *State) SetCount() int {
	return len(s.sets)
}

// SetNameInput returns the set name typed since PageCreateSet was last entered
func (s *State) SetNameInput() string {
	return string(s.input)
}

// Exiting reports whether the exit flag is set
func (s *State) Exiting() bool {
	return s.exit
}

// --- Transitions (InputHandler only) ---

func (s *State) openCreateSet() {
	s.input = s.input[:0]
	s.page = PageCreateSet
}

// cancelCreateSet leaves the buffer stale; it is cleared on next entry
func (s *State) cancelCreateSet() {
	s.page = PageSetList
}

func (s *State) commitSet() flashcard.Set {
	set := flashcard.NewSet(string(s.input))
	s.sets = append(s.sets, set)
	s.page = PageSetList
	return set.Clone()
}

func (s *State) appendInput(ch rune) {
	s.input = append(s.input, ch)
}

// deleteInput removes the last rune, returns false on empty buffer
func (s *State) deleteInput() bool {
	if len(s.input) == 0 {
		return false
	}
	s.input = s.input[:len(s.input)-1]
	return true
}

// requestExit sets the exit flag and nothing else
func (s *State) requestExit() {
	s.exit = true
}
