package mapper

import (
	"medicine-chatbot-be/internal/entity"
	"medicine-chatbot-be/internal/model"
)

type UserProfileMapper struct{}

func NewUserProfileMapper() *UserProfileMapper {
	return &UserProfileMapper{}
}

func (m *UserProfileMapper) ToEntity(u *model.UserProfile) *entity.UserProfile {
	if u == nil {
		return nil
	}

	prescriptions := make([]entity.Prescription, len(u.Prescriptions))
	for i, p := range u.Prescriptions {
		prescriptions[i] = entity.Prescription{Drug: p.Drug, Dosage: p.Dosage, Frequency: p.Frequency}
	}

	surgeries := make([]entity.Surgery, len(u.Surgeries))
	for i, s := range u.Surgeries {
		surgeries[i] = entity.Surgery{Name: s.Name, Date: s.Date}
	}

	return &entity.UserProfile{
		Id:            u.Id,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Age:           u.Age,
		Gender:        u.Gender,
		HeightCm:      u.HeightCm,
		WeightKg:      u.WeightKg,
		Allergies:     append([]string(nil), u.Allergies...),
		FamilyHistory: append([]string(nil), u.FamilyHistory...),
		Prescriptions: prescriptions,
		Surgeries:     surgeries,
	}
}
