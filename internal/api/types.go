package api

// ErrorResponse is the body returned for client and server errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResponse is the body of the liveness endpoint.
type MessageResponse struct {
	Message string `json:"message"`
}
