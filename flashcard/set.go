// Package flashcard holds the flashcard data model: named sets of front/back cards.
package flashcard

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Set is a named, ordered collection of cards
// Names are display identifiers only; duplicates and empty names are legal
type Set struct {
	ID    string // Public identifier, independent of Name
	Name  string
	Cards []Card
}

// NewSet creates an empty set with the given name
func NewSet(name string) Set {
	return Set{
		ID:    gonanoid.Must(),
		Name:  name,
		Cards: make([]Card, 0),
	}
}

// AddCard appends a card built from front and back, preserving insertion order
func (s *Set) AddCard(front, back string) {
	s.Cards = append(s.Cards, Card{Front: front, Back: back})
}

// Len returns the number of cards in the set
func (s Set) Len() int {
	return len(s.Cards)
}

// Clone returns a copy that shares no card storage with s
func (s Set) Clone() Set {
	cards := make([]Card, len(s.Cards))
	copy(cards, s.Cards)
	s.Cards = cards
	return s
}
