// Package entity holds the building blocks shared by catalog entities.
package entity

import (
	"context"
)

// Validatable is implemented by entities that support self-validation.
// Validation checks internal invariants (without database access).
type Validatable interface {
	// Validate checks entity invariants.
	// Returns nil if valid, AppError with details otherwise.
	Validate(ctx context.Context) error
}

// Coded is a validatable entity identified by a unique, immutable code.
type Coded interface {
	Validatable
	GetCode() string
}
