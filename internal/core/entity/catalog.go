package entity

import (
	"context"
	"strings"

	"catalogodeleite/internal/core/apperror"
)

// Catalog is the base type for reference data: a code plus a display name.
// Embed it in concrete catalog entries.
type Catalog struct {
	// Code is the unique identifier. It never changes after creation.
	Code string `db:"code" json:"code"`

	// Name is the display name
	Name string `db:"name" json:"name"`
}

// NewCatalog creates a Catalog.
func NewCatalog(code, name string) Catalog {
	return Catalog{Code: code, Name: name}
}

// GetCode implements Coded.
func (c *Catalog) GetCode() string {
	return c.Code
}

// Validate implements Validatable interface.
func (c *Catalog) Validate(ctx context.Context) error {
	if strings.TrimSpace(c.Code) == "" {
		return apperror.NewValidation("code is required").
			WithDetail("field", "code")
	}
	return nil
}
