package dto

// Dates cross the wire as RFC 3339 strings; the datetime tags below pin the
// layout.

type CreateHeaterRequest struct {
	CustomerID          string  `json:"customerId" validate:"required,uuid"`
	Model               string  `json:"model" validate:"required,max=100"`
	SerialNumber        *string `json:"serialNumber" validate:"omitempty,max=100"`
	InstallationDate    *string `json:"installationDate" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	MaintenanceInterval int     `json:"maintenanceInterval" validate:"required,oneof=1 3 6 12 24"`
	LastMaintenance     *string `json:"lastMaintenance" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// UpdateHeaterRequest is an explicit patch. An empty date string clears the
// stored value. NextMaintenance is absent on purpose: it is derived, never
// client-supplied.
type UpdateHeaterRequest struct {
	Model               *string `json:"model" validate:"omitempty,min=1,max=100"`
	SerialNumber        *string `json:"serialNumber" validate:"omitempty,max=100"`
	InstallationDate    *string `json:"installationDate" validate:"omitempty,eq=|datetime=2006-01-02T15:04:05Z07:00"`
	MaintenanceInterval *int    `json:"maintenanceInterval" validate:"omitempty,oneof=1 3 6 12 24"`
	LastMaintenance     *string `json:"lastMaintenance" validate:"omitempty,eq=|datetime=2006-01-02T15:04:05Z07:00"`
}
