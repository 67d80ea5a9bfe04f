package entity

type Prescription struct {
	Drug      string
	Dosage    string
	Frequency string
}

type Surgery struct {
	Name string
	Date string
}

type UserProfile struct {
	Id            string
	FirstName     string
	LastName      string
	Age           *int
	Gender        string
	HeightCm      *float64
	WeightKg      *float64
	Allergies     []string
	FamilyHistory []string
	Prescriptions []Prescription
	Surgeries     []Surgery
}

// PrescribedDrugNames lists prescription drug names in stored order, skipping blanks.
func (u *UserProfile) PrescribedDrugNames() []string {
	if u == nil {
		return nil
	}
	names := make([]string, 0, len(u.Prescriptions))
	for _, p := range u.Prescriptions {
		if p.Drug != "" {
			names = append(names, p.Drug)
		}
	}
	return names
}
