// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/google/uuid"

// NewID returns a fresh random identifier for an entity.
func NewID() string {
	return uuid.NewString()
}
