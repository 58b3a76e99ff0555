package i

import (
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/google/uuid"
)

// RoundStore keeps the live rounds of the server.
type RoundStore interface {
	// Save inserts or replaces a round.
	Save(round *service.Round) error

	// ByID retrieves a round by its unique ID.
	// Returns an error if the round is not found.
	ByID(id uuid.UUID) (*service.Round, error)

	// Delete removes a round.
	Delete(id uuid.UUID) error

	// Count returns the number of live rounds.
	Count() int
}
