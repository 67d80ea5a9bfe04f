package model

import (
	"time"

	"gorm.io/datatypes"
)

type Prescription struct {
	Drug      string `json:"drug"`
	Dosage    string `json:"dosage,omitempty"`
	Frequency string `json:"frequency,omitempty"`
}

type Surgery struct {
	Name string `json:"name"`
	Date string `json:"date,omitempty"`
}

type UserProfile struct {
	Id            string                            `gorm:"type:varchar(64);primaryKey"`
	FirstName     string                            `gorm:"type:varchar(100)"`
	LastName      string                            `gorm:"type:varchar(100)"`
	Age           *int                              `gorm:"type:int"`
	Gender        string                            `gorm:"type:varchar(20)"`
	HeightCm      *float64                          `gorm:"type:numeric(5,1)"`
	WeightKg      *float64                          `gorm:"type:numeric(5,1)"`
	Allergies     datatypes.JSONSlice[string]       `gorm:"type:jsonb"`
	FamilyHistory datatypes.JSONSlice[string]       `gorm:"type:jsonb"`
	Prescriptions datatypes.JSONSlice[Prescription] `gorm:"type:jsonb"`
	Surgeries     datatypes.JSONSlice[Surgery]      `gorm:"type:jsonb"`
	CreatedAt     time.Time                         `gorm:"autoCreateTime"`
	UpdatedAt     time.Time                         `gorm:"autoUpdateTime"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
