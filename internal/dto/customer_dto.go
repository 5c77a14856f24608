package dto

type CreateCustomerRequest struct {
	Name                    string   `json:"name" validate:"required,max=100"`
	Street                  string   `json:"street" validate:"required,max=100"`
	ZipCode                 string   `json:"zipCode" validate:"required,min=4,max=10"`
	City                    string   `json:"city" validate:"required,max=100"`
	Phone                   string   `json:"phone" validate:"required,max=20"`
	Email                   string   `json:"email" validate:"omitempty,email"`
	HeatingType             string   `json:"heatingType" validate:"required,oneof=GAS OIL DISTRICT_HEATING HEAT_PUMP_AIR HEAT_PUMP_GROUND HEAT_PUMP_WATER PELLET_BIOMASS NIGHT_STORAGE ELECTRIC_DIRECT HYBRID CHP"`
	AdditionalEnergySources []string `json:"additionalEnergySources" validate:"omitempty,dive,oneof=PHOTOVOLTAIC SOLAR_THERMAL SMALL_WIND"`
	EnergyStorageSystems    []string `json:"energyStorageSystems" validate:"omitempty,dive,oneof=BATTERY_STORAGE HEAT_STORAGE"`
	Notes                   string   `json:"notes" validate:"omitempty,max=1000"`
}

// UpdateCustomerRequest is an explicit patch: only non-nil fields are applied
// to the stored customer. An empty email string clears the stored address.
type UpdateCustomerRequest struct {
	Name                    *string   `json:"name" validate:"omitempty,min=1,max=100"`
	Street                  *string   `json:"street" validate:"omitempty,min=1,max=100"`
	ZipCode                 *string   `json:"zipCode" validate:"omitempty,min=4,max=10"`
	City                    *string   `json:"city" validate:"omitempty,min=1,max=100"`
	Phone                   *string   `json:"phone" validate:"omitempty,min=1,max=20"`
	Email                   *string   `json:"email" validate:"omitempty,eq=|email"`
	HeatingType             *string   `json:"heatingType" validate:"omitempty,oneof=GAS OIL DISTRICT_HEATING HEAT_PUMP_AIR HEAT_PUMP_GROUND HEAT_PUMP_WATER PELLET_BIOMASS NIGHT_STORAGE ELECTRIC_DIRECT HYBRID CHP"`
	AdditionalEnergySources *[]string `json:"additionalEnergySources" validate:"omitempty,dive,oneof=PHOTOVOLTAIC SOLAR_THERMAL SMALL_WIND"`
	EnergyStorageSystems    *[]string `json:"energyStorageSystems" validate:"omitempty,dive,oneof=BATTERY_STORAGE HEAT_STORAGE"`
	Notes                   *string   `json:"notes" validate:"omitempty,max=1000"`
}
