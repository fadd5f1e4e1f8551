package errors

// a standardized error response body
type ErrorResponse struct {
	Error   string `json:"error"`             // error code (e.g., "not_found")
	Message string `json:"message"`           // user-friendly message
	Details string `json:"details,omitempty"` // optional details (sanitized in production)
}

// category plus sanitized message for a classified error
type ErrorInfo struct {
	category  string
	sanitized string
}
