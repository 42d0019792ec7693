package utils

import "github.com/google/uuid"

// UUIDGenerator produces request trace ids. Version 7 ids are preferred
// because they sort by creation time, which keeps log lines of one period
// together.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsValidTraceID reports whether s is a UUID in canonical form.
func IsValidTraceID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
