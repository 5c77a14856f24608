package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Maintenance is a historical service event on a heater. Records are
// immutable once created, except for deletion.
type Maintenance struct {
	ID        uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	HeaterID  uuid.UUID                   `gorm:"type:uuid;not null;index" json:"heaterId"`
	UserID    uuid.UUID                   `gorm:"type:uuid;not null;index" json:"userId"`
	Date      time.Time                   `gorm:"not null;index" json:"date"`
	Notes     *string                     `gorm:"size:1000" json:"notes"`
	Photos    datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"photos"`
	CreatedAt time.Time                   `json:"createdAt"`
	Heater    *Heater                     `gorm:"foreignKey:HeaterID" json:"heater,omitempty"`
}
