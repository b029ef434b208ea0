package utils

import (
	"github.com/google/uuid"
)

// NewID returns a new random ID.
func NewID() string {
	return uuid.NewString()
}

// IsValidID returns true if the given string is an ID we could have minted.
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
