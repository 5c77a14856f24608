package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Customer is a service contract holder. UserID is set at creation and never
// changes; every query against customers must filter by it.
type Customer struct {
	ID                      uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID                  uuid.UUID                   `gorm:"type:uuid;not null;index" json:"userId"`
	Name                    string                      `gorm:"not null;size:100" json:"name"`
	Street                  string                      `gorm:"not null;size:100" json:"street"`
	ZipCode                 string                      `gorm:"not null;size:10" json:"zipCode"`
	City                    string                      `gorm:"not null;size:100" json:"city"`
	Phone                   string                      `gorm:"not null;size:20" json:"phone"`
	Email                   *string                     `gorm:"size:255" json:"email"`
	HeatingType             string                      `gorm:"not null;size:30" json:"heatingType"`
	AdditionalEnergySources datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"additionalEnergySources"`
	EnergyStorageSystems    datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"energyStorageSystems"`
	Notes                   *string                     `gorm:"size:1000" json:"notes,omitempty"`
	CreatedAt               time.Time                   `json:"createdAt"`
	UpdatedAt               time.Time                   `json:"updatedAt"`
	User                    User                        `gorm:"foreignKey:UserID" json:"-"`
	Heaters                 []Heater                    `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"heaters,omitempty"`
}
