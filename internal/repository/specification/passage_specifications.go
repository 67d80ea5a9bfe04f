package specification

import "gorm.io/gorm"

// MetadataEq keeps passages whose metadata[Key] equals Value
type MetadataEq struct {
	Key   string
	Value string
}

func (s MetadataEq) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("metadata ->> ? = ?", s.Key, s.Value)
}

func (s MetadataEq) Matches(metadata map[string]string) bool {
	v, ok := metadata[s.Key]
	return ok && v == s.Value
}

// MetadataNe keeps passages whose metadata[Key] differs from Value.
// Passages without the key are kept.
type MetadataNe struct {
	Key   string
	Value string
}

func (s MetadataNe) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("(metadata ->> ?) IS DISTINCT FROM ?", s.Key, s.Value)
}

func (s MetadataNe) Matches(metadata map[string]string) bool {
	v, ok := metadata[s.Key]
	return !ok || v != s.Value
}

// MatchesAll evaluates every metadata specification; non-metadata ones are ignored.
func MatchesAll(metadata map[string]string, specs ...Specification) bool {
	for _, spec := range specs {
		ms, ok := spec.(MetadataSpecification)
		if !ok {
			continue
		}
		if !ms.Matches(metadata) {
			return false
		}
	}
	return true
}
