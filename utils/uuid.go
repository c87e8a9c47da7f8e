package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique bid identifier string
func GenerateID() string {
	return uuid.New().String()
}
