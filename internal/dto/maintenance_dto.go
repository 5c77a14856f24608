package dto

type CreateMaintenanceRequest struct {
	HeaterID string   `json:"heaterId" validate:"required,uuid"`
	Date     string   `json:"date" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Notes    *string  `json:"notes" validate:"omitempty,max=1000"`
	Photos   []string `json:"photos" validate:"omitempty,dive,url"`
}

type PhotoUploadResponse struct {
	URL string `json:"url"`
}
