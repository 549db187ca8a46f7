package handlers

// MessageResponse is the generic success acknowledgment body.
// swagger:model MessageResponse
type MessageResponse struct {
	// Human-readable success message
	// example: Registration successful
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body for every endpoint.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Human-readable error message
	// example: All fields are required
	Error string `json:"error"`
}

// TokenResponse carries the bearer token returned by the login endpoints.
// swagger:model TokenResponse
type TokenResponse struct {
	// Signed bearer token
	// example: JWT_TOKEN
	Token string `json:"token"`
}
