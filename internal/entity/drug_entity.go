package entity

import "strings"

type DrugInteraction struct {
	DrugbankId  string
	Description string
}

type Drug struct {
	DrugbankId       string
	Name             string
	Description      string
	Synonyms         []string
	ProductNames     []string
	Interactions     []DrugInteraction
	FoodInteractions []string
	Targets          []string
}

// InteractionWith returns the first interaction record naming otherId.
func (d *Drug) InteractionWith(otherId string) (DrugInteraction, bool) {
	if d == nil || otherId == "" {
		return DrugInteraction{}, false
	}
	for _, in := range d.Interactions {
		if in.DrugbankId == otherId {
			return in, true
		}
	}
	return DrugInteraction{}, false
}

// MatchesName reports whether name equals the drug name or is a substring
// of any product name or synonym, case-insensitively.
func (d *Drug) MatchesName(name string) bool {
	needle := strings.ToLower(strings.TrimSpace(name))
	if d == nil || needle == "" {
		return false
	}
	if strings.ToLower(d.Name) == needle {
		return true
	}
	for _, p := range d.ProductNames {
		if strings.Contains(strings.ToLower(p), needle) {
			return true
		}
	}
	for _, s := range d.Synonyms {
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}
