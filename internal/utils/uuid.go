package utils

import "github.com/google/uuid"

// UUIDGenerator produces ids for sync logs and newly enrolled devices.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7. Time-ordered ids keep sync logs roughly sorted
// by creation even when listed by primary key; falls back to v4 if the
// clock-based generation fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
