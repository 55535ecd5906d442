package models

import "math"

// ApiResponse is the uniform envelope for every response, success or
// failure. Data is omitted from the JSON entirely (not null) when there
// is no payload.
type ApiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Success wraps a payload in a successful envelope.
func Success(message string, data any) ApiResponse {
	return ApiResponse{Success: true, Message: message, Data: data}
}

// Error builds a failure envelope with no payload.
func Error(message string) ApiResponse {
	return ApiResponse{Success: false, Message: message}
}

// PaginatedResponse is the envelope for a future paginated list endpoint.
// Nothing serves it yet; it is kept so the wire shape is settled.
type PaginatedResponse struct {
	Items      any   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int64 `json:"total_pages"`
}

// NewPaginatedResponse computes the page count from total and page size.
func NewPaginatedResponse(items any, total int64, page, perPage int) PaginatedResponse {
	totalPages := int64(0)
	if perPage > 0 {
		totalPages = int64(math.Ceil(float64(total) / float64(perPage)))
	}
	return PaginatedResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}
}
