package employee

type CreateEmployeeRequest struct {
	FullName      string  `json:"full_name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Position      string  `json:"position"`
	MonthlySalary float64 `json:"monthly_salary" binding:"gte=0"`
	Status        string  `json:"status" binding:"omitempty,oneof=Active Inactive"`
	HireDate      string  `json:"hire_date"`
}

type UpdateEmployeeRequest struct {
	FullName      string  `json:"full_name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Position      string  `json:"position"`
	MonthlySalary float64 `json:"monthly_salary" binding:"gte=0"`
	Status        string  `json:"status" binding:"required,oneof=Active Inactive"`
	HireDate      string  `json:"hire_date"`
}

type EmployeeResponse struct {
	ID            int64   `json:"id"`
	FullName      string  `json:"full_name"`
	Email         string  `json:"email"`
	Position      string  `json:"position,omitempty"`
	MonthlySalary float64 `json:"monthly_salary"`
	Status        string  `json:"status"`
	HireDate      *string `json:"hire_date,omitempty"`
}

// EmployeeOption is the slim row the select widgets consume.
type EmployeeOption struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
}
