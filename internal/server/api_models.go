package server

// InspectRequest is the payload for submitting a URL for inspection.
type InspectRequest struct {
	URL string `json:"url" example:"http://suspicious-shop.example"`
}

// ErrorResponse is a uniform error payload returned by the API.
type ErrorResponse struct {
	Error string `json:"error" example:"not found"`
}
