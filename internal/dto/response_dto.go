package dto

// ErrorResponse is the envelope returned for every failed request.
// Success is always false; Message is safe to show to the user.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
