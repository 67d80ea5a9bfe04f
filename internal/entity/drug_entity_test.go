package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrug_InteractionWith(t *testing.T) {
	d := &Drug{
		DrugbankId: "DB00945",
		Interactions: []DrugInteraction{
			{DrugbankId: "DB00682", Description: "first"},
			{DrugbankId: "DB00682", Description: "second"},
		},
	}

	in, ok := d.InteractionWith("DB00682")
	assert.True(t, ok)
	assert.Equal(t, "first", in.Description)

	_, ok = d.InteractionWith("DB00001")
	assert.False(t, ok)

	var nilDrug *Drug
	_, ok = nilDrug.InteractionWith("DB00682")
	assert.False(t, ok)
}

func TestDrug_MatchesName(t *testing.T) {
	d := &Drug{
		Name:         "Acetylsalicylic acid",
		ProductNames: []string{"Bayer Aspirin"},
		Synonyms:     []string{"ASA"},
	}

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"exact name any case", "ACETYLSALICYLIC ACID", true},
		{"partial name is not enough", "acetyl", false},
		{"product substring", "aspirin", true},
		{"synonym substring", "asa", true},
		{"blank", "  ", false},
		{"unrelated", "warfarin", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.MatchesName(tt.input))
		})
	}
}
