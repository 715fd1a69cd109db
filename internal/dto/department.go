package dto

type DepartmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type DepartmentResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
