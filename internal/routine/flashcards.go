package routine

import (
	"sort"

	"github.com/google/uuid"
)

// SortedFlashcards returns the cards ordered by their index field.
func (r *Routine) SortedFlashcards() []Flashcard {
	cards := make([]Flashcard, len(r.Flashcards))
	copy(cards, r.Flashcards)
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].Index < cards[j].Index
	})
	return cards
}

// AppendFlashcard adds a card at the end of the sequence and returns it.
func (r *Routine) AppendFlashcard(text, imageURL string) *Flashcard {
	card := Flashcard{
		ID:        uuid.New(),
		RoutineID: r.ID,
		Text:      text,
		ImageURL:  imageURL,
	}
	r.Flashcards = append(r.SortedFlashcards(), card)
	r.reindex()
	return &r.Flashcards[len(r.Flashcards)-1]
}

// RemoveFlashcards deletes the cards with the given ids and renumbers the
// remaining sequence, preserving relative order.
func (r *Routine) RemoveFlashcards(ids ...uuid.UUID) {
	if len(ids) == 0 {
		return
	}
	selected := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		selected[id] = struct{}{}
	}

	kept := make([]Flashcard, 0, len(r.Flashcards))
	for _, card := range r.SortedFlashcards() {
		if _, ok := selected[card.ID]; ok {
			continue
		}
		kept = append(kept, card)
	}
	r.Flashcards = kept
	r.reindex()
}

// MoveFlashcard moves the card at position from to position to within the
// ordered sequence and renumbers. Out-of-range positions are no-ops.
func (r *Routine) MoveFlashcard(from, to int) {
	cards := r.SortedFlashcards()
	if from < 0 || from >= len(cards) || to < 0 || to >= len(cards) {
		return
	}
	card := cards[from]
	cards = append(cards[:from], cards[from+1:]...)
	cards = append(cards[:to], append([]Flashcard{card}, cards[to:]...)...)

	r.Flashcards = cards
	r.reindex()
}

// reindex renumbers indices contiguously from 0 following the current slice
// order. The sequence is never left with gaps or duplicate indices.
func (r *Routine) reindex() {
	for i := range r.Flashcards {
		r.Flashcards[i].Index = i
		r.Flashcards[i].RoutineID = r.ID
	}
}
