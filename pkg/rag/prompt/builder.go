package prompt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"medicine-chatbot-be/internal/constant"
	"medicine-chatbot-be/internal/entity"
)

var (
	profileQuery = regexp.MustCompile(`\b(prescriptions|allergies|history|details|profile|weight|height|gender|age)\b`)
	dataType     = regexp.MustCompile(`\b(prescriptions|allergies|family history|surgeries|weight|height|gender|age)\b`)
)

// IsProfileQuery reports whether the question asks about the user's own record.
// Callers only route here when no drug was resolved.
func IsProfileQuery(question string) bool {
	return profileQuery.MatchString(strings.ToLower(question))
}

// DataType names the profile item asked about, "details" when none matches.
func DataType(question string) string {
	if m := dataType.FindString(strings.ToLower(question)); m != "" {
		return m
	}
	return constant.DefaultDataType
}

// Grounded builds the drug-flow answer prompt.
func Grounded(question, history, userDetails, knowledge string) string {
	return fmt.Sprintf(constant.GroundedAnswerPrompt, question, history, userDetails, knowledge)
}

// GeneralChat builds the prompt used when no drug was resolved.
func GeneralChat(history, question string) string {
	return fmt.Sprintf(constant.GeneralChatPrompt, history, question)
}

// UserDetail builds the profile-query prompt with the data type filled in.
func UserDetail(history, userDetails, question string) string {
	p := fmt.Sprintf(constant.UserDetailPrompt, history, userDetails, question)
	return strings.ReplaceAll(p, constant.DataTypePlaceholder, DataType(question))
}

// UserDetailsText renders the profile as "Label: value" lines for prompts.
func UserDetailsText(profile *entity.UserProfile) string {
	if profile == nil {
		return constant.UserDetailsNotFound
	}

	var parts []string
	scalar := func(label, value string) {
		if value != "" {
			parts = append(parts, label+": "+value)
		}
	}

	scalar("First Name", profile.FirstName)
	scalar("Last Name", profile.LastName)
	if profile.Age != nil {
		scalar("Age", strconv.Itoa(*profile.Age))
	}
	scalar("Gender", profile.Gender)
	if profile.HeightCm != nil {
		scalar("Height Cm", formatFloat(*profile.HeightCm))
	}
	if profile.WeightKg != nil {
		scalar("Weight Kg", formatFloat(*profile.WeightKg))
	}

	if len(profile.Allergies) > 0 {
		parts = append(parts, "Allergies: "+strings.Join(profile.Allergies, ", "))
	}
	if len(profile.FamilyHistory) > 0 {
		parts = append(parts, "Family History: "+strings.Join(profile.FamilyHistory, ", "))
	}
	for i, p := range profile.Prescriptions {
		line := joinFields(
			field{"drug", p.Drug},
			field{"dosage", p.Dosage},
			field{"frequency", p.Frequency},
		)
		if line != "" {
			parts = append(parts, fmt.Sprintf("Prescriptions %d: %s", i+1, line))
		}
	}
	for i, s := range profile.Surgeries {
		line := joinFields(field{"name", s.Name}, field{"date", s.Date})
		if line != "" {
			parts = append(parts, fmt.Sprintf("Surgeries %d: %s", i+1, line))
		}
	}

	if len(parts) == 0 {
		return constant.UserDetailsEmpty
	}
	return strings.Join(parts, "\n")
}

type field struct {
	key   string
	value string
}

func joinFields(fields ...field) string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.value != "" {
			out = append(out, f.key+": "+f.value)
		}
	}
	return strings.Join(out, ", ")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
