package models

import (
	"time"

	"github.com/google/uuid"
)

// Heater is a physical unit installed at a customer's site.
//
// NextMaintenance is derived: it always equals LastMaintenance advanced by
// MaintenanceInterval calendar months and is recomputed by the services on
// every mutation that touches either input. It is never accepted from a
// request body.
type Heater struct {
	ID                  uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID          uuid.UUID     `gorm:"type:uuid;not null;index" json:"customerId"`
	Model               string        `gorm:"not null;size:100" json:"model"`
	SerialNumber        *string       `gorm:"size:100" json:"serialNumber"`
	InstallationDate    *time.Time    `json:"installationDate"`
	MaintenanceInterval int           `gorm:"not null" json:"maintenanceInterval"`
	LastMaintenance     *time.Time    `json:"lastMaintenance"`
	NextMaintenance     time.Time     `gorm:"not null;index" json:"nextMaintenance"`
	CreatedAt           time.Time     `json:"createdAt"`
	UpdatedAt           time.Time     `json:"updatedAt"`
	Customer            *Customer     `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Maintenances        []Maintenance `gorm:"foreignKey:HeaterID;constraint:OnDelete:CASCADE" json:"maintenances,omitempty"`
}
