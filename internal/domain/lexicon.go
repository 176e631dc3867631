package domain

import (
	"time"

	"github.com/google/uuid"
)

// Language is a persisted simulated language: the inventory it was built
// from plus the generation settings needed to describe it.
type Language struct {
	ID         uuid.UUID
	Name       string
	Seed       string
	Inventory  Inventory
	NoConsLow  float64
	NoConsHigh float64
	CreatedAt  time.Time
}

// Lexeme is one generated word assigned to a concept of a language.
type Lexeme struct {
	ID         uuid.UUID
	LanguageID uuid.UUID
	Concept    string
	Form       string
	Position   int
	CreatedAt  time.Time
}
