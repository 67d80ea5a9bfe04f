package model

import (
	"time"

	"gorm.io/datatypes"
)

type DrugProduct struct {
	Name     string `json:"name"`
	Labeller string `json:"labeller,omitempty"`
}

type DrugInteraction struct {
	DrugbankId  string `json:"drugbank_id"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description"`
}

type Drug struct {
	DrugbankId       string                               `gorm:"column:drugbank_id;type:varchar(16);primaryKey"`
	Name             string                               `gorm:"type:varchar(255);not null;index"`
	Description      string                               `gorm:"type:text"`
	Synonyms         datatypes.JSONSlice[string]          `gorm:"type:jsonb"`
	Products         datatypes.JSONSlice[DrugProduct]     `gorm:"type:jsonb"`
	DrugInteractions datatypes.JSONSlice[DrugInteraction] `gorm:"type:jsonb"`
	FoodInteractions datatypes.JSONSlice[string]          `gorm:"type:jsonb"`
	Targets          datatypes.JSONSlice[string]          `gorm:"type:jsonb"`
	CreatedAt        time.Time                            `gorm:"autoCreateTime"`
	UpdatedAt        time.Time                            `gorm:"autoUpdateTime"`
}

func (Drug) TableName() string {
	return "drugs"
}
