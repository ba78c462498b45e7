package dto

import "time"

// APIResponse provides the base structured API response
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewAPIResponse creates a success response wrapping data
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	}
}

// SuccessResponse represents a bare acknowledgement for mutations with no payload
type SuccessResponse struct {
	Message string `json:"message"`
}
