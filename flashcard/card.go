package flashcard

// Card is a front/back text pair belonging to exactly one Set
type Card struct {
	Front string
	Back  string
}
