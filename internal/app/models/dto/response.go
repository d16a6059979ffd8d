package dto

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message" example:"Student updated successfully"`
}

// CreatedResponse carries the identifier assigned to a new document
type CreatedResponse struct {
	ID      string `json:"id" example:"66f1c2a4e13b5a2f9c0d1e2f"`
	Message string `json:"message" example:"Student added successfully"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Store  string `json:"store" example:"mongodb"`
}
