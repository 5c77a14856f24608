package dto

import "github.com/heizlog/heizlog/internal/validation"

// Uniform JSON envelope shared by every endpoint.

type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
}

type ErrorResponse struct {
	Success bool                    `json:"success"`
	Error   string                  `json:"error"`
	Details []validation.FieldError `json:"details,omitempty"`
}

func Success(data interface{}) SuccessResponse {
	return SuccessResponse{Success: true, Data: data}
}

func SuccessCount(data interface{}, count int) SuccessResponse {
	return SuccessResponse{Success: true, Data: data, Count: &count}
}

func SuccessMessage(message string) SuccessResponse {
	return SuccessResponse{Success: true, Message: message}
}

func Fail(message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message}
}

func FailDetails(message string, details []validation.FieldError) ErrorResponse {
	return ErrorResponse{Success: false, Error: message, Details: details}
}
