package utils

import (
	"github.com/google/uuid"
)

// GenerateID generates a random ID for entities
func GenerateID() string {
	return uuid.NewString()
}

// GenerateFileName generates a unique file name with the given extension
func GenerateFileName(ext string) string {
	return uuid.NewString() + ext
}
