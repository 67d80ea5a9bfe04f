package specification

import "gorm.io/gorm"

// Specification defines the interface for query specifications
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}

// MetadataSpecification is a Specification that can also be evaluated
// against passage metadata held in memory.
type MetadataSpecification interface {
	Specification
	Matches(metadata map[string]string) bool
}
