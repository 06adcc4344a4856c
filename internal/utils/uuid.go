package utils

import (
	"github.com/google/uuid"

	"github.com/MKhiriev/go-project-keeper/models"
)

// UUIDGenerator produces time-ordered UUIDv7 strings.
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

// LocalIDGenerator produces identifiers for records created without the
// remote collection. They always start with [models.LocalIDPrefix].
type LocalIDGenerator struct {
	uuids *UUIDGenerator
}

func NewLocalIDGenerator() *LocalIDGenerator {
	return &LocalIDGenerator{uuids: NewUUIDGenerator()}
}

func (g *LocalIDGenerator) Generate() string {
	return models.LocalIDPrefix + g.uuids.Generate()
}
