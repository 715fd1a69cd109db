package dto

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	Priority    string `json:"priority,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
	EmployeeID  string `json:"employeeId,omitempty"`
}

// UpdateTaskRequest is a partial patch; nil fields are left untouched.
// DueDate distinguishes "absent" (nil) from "clear" (empty string).
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
}

type TaskOwner struct {
	Name       string `json:"name"`
	Department string `json:"department"`
}

type TaskResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     string     `json:"dueDate,omitempty"`
	EmployeeID  string     `json:"employeeId"`
	CreatedAt   string     `json:"createdAt"`
	Owner       *TaskOwner `json:"owner,omitempty"`
}
