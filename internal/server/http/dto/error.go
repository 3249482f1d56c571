package dto

// ErrorResponse carries a human-readable failure description.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse is the root endpoint greeting.
type MessageResponse struct {
	Message string `json:"message"`
}
