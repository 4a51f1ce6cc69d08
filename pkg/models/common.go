package models

import "github.com/google/uuid"

// NewCalculationID generates a unique identifier for one engine invocation.
func NewCalculationID() string {
	return uuid.New().String()
}
