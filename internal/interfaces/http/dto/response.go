// Package dto holds the wire shapes shared by all HTTP handlers.
package dto

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Detail    string             `json:"detail"`
	Code      string             `json:"code"`
	RequestID string             `json:"request_id,omitempty"`
	Details   []ValidationDetail `json:"details,omitempty"`
}

// ValidationDetail describes one rejected request field
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, detail, requestID string) ErrorResponse {
	return ErrorResponse{
		Detail:    detail,
		Code:      code,
		RequestID: requestID,
	}
}

// NewValidationErrorResponse creates a validation error response with field details
func NewValidationErrorResponse(detail, requestID string, details []ValidationDetail) ErrorResponse {
	return ErrorResponse{
		Detail:    detail,
		Code:      ErrCodeValidation,
		RequestID: requestID,
		Details:   details,
	}
}

// MessageResponse carries a single human-readable message
type MessageResponse struct {
	Message string `json:"message"`
}

// ReadinessResponse reports dependency status
type ReadinessResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
