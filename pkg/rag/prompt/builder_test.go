package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"medicine-chatbot-be/internal/constant"
	"medicine-chatbot-be/internal/entity"
)

func TestIsProfileQuery(t *testing.T) {
	tests := []struct {
		question string
		want     bool
	}{
		{"What are my prescriptions?", true},
		{"How much is my WEIGHT?", true},
		{"show my profile", true},
		{"Hello there", false},
		{"What is aspirin?", false},
		{"Is this agency open?", false},
	}
	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			assert.Equal(t, tt.want, IsProfileQuery(tt.question))
		})
	}
}

func TestDataType(t *testing.T) {
	assert.Equal(t, "prescriptions", DataType("What are my prescriptions?"))
	assert.Equal(t, "family history", DataType("Tell me my family history"))
	assert.Equal(t, "details", DataType("Show my profile"))
}

func TestUserDetail_SubstitutesDataType(t *testing.T) {
	p := UserDetail("", "Age: 30", "What are my allergies?")

	assert.NotContains(t, p, constant.DataTypePlaceholder)
	assert.Contains(t, p, "does not currently list any allergies for your profile")
	assert.Contains(t, p, "Age: 30")
}

func TestUserDetailsText(t *testing.T) {
	age := 42
	height := 170.0
	weight := 72.5

	profile := &entity.UserProfile{
		FirstName:     "Sam",
		Age:           &age,
		HeightCm:      &height,
		WeightKg:      &weight,
		Allergies:     []string{"Penicillin", "Peanuts"},
		Prescriptions: []entity.Prescription{{Drug: "Warfarin", Dosage: "5mg", Frequency: "daily"}},
		Surgeries:     []entity.Surgery{{Name: "Appendectomy"}},
	}

	got := UserDetailsText(profile)
	lines := strings.Split(got, "\n")

	assert.Equal(t, []string{
		"First Name: Sam",
		"Age: 42",
		"Height Cm: 170",
		"Weight Kg: 72.5",
		"Allergies: Penicillin, Peanuts",
		"Prescriptions 1: drug: Warfarin, dosage: 5mg, frequency: daily",
		"Surgeries 1: name: Appendectomy",
	}, lines)
}

func TestUserDetailsText_Sentinels(t *testing.T) {
	assert.Equal(t, constant.UserDetailsNotFound, UserDetailsText(nil))
	assert.Equal(t, constant.UserDetailsEmpty, UserDetailsText(&entity.UserProfile{Id: "u1"}))
}

func TestGrounded_OrdersSections(t *testing.T) {
	p := Grounded("Q?", "User: hi", "Age: 1", "CTX")

	assert.Less(t, strings.Index(p, "Q?"), strings.Index(p, "User: hi"))
	assert.Less(t, strings.Index(p, "Age: 1"), strings.Index(p, "CTX"))
	assert.Contains(t, p, "KNOWLEDGE CONTEXT")
}
