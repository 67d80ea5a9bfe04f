package specification

import (
	"strings"

	"gorm.io/gorm"
)

// ByDrugbankID filters drugs by their registry identifier
type ByDrugbankID struct {
	DrugbankID string
}

func (s ByDrugbankID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("drugbank_id = ?", s.DrugbankID)
}

// DrugNameOrSynonym matches the exact drug name, or a substring of any
// product name or synonym. All comparisons are case-insensitive and the
// input is treated literally.
type DrugNameOrSynonym struct {
	Name string
}

func (s DrugNameOrSynonym) Apply(db *gorm.DB) *gorm.DB {
	exact := EscapeLike(s.Name)
	contains := "%" + exact + "%"
	return db.Where(
		`name ILIKE ? ESCAPE '\'`+
			` OR EXISTS (SELECT 1 FROM jsonb_array_elements(COALESCE(products, '[]'::jsonb)) p WHERE p->>'name' ILIKE ? ESCAPE '\')`+
			` OR EXISTS (SELECT 1 FROM jsonb_array_elements_text(COALESCE(synonyms, '[]'::jsonb)) syn WHERE syn ILIKE ? ESCAPE '\')`,
		exact, contains, contains,
	)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike neutralizes LIKE wildcards so user text matches literally.
func EscapeLike(s string) string {
	return likeEscaper.Replace(strings.TrimSpace(s))
}
