package attendance

type CreateAttendanceRequest struct {
	EmployeeID    int64   `json:"employee_id" binding:"required"`
	Date          string  `json:"date" binding:"required"`
	Status        string  `json:"status" binding:"required,oneof=Present Absent Late Half-day 'On Leave'"`
	OvertimeHours float64 `json:"overtime_hours" binding:"gte=0"`
	Notes         *string `json:"notes"`
}

type UpdateAttendanceRequest struct {
	Status        string  `json:"status" binding:"required,oneof=Present Absent Late Half-day 'On Leave'"`
	OvertimeHours float64 `json:"overtime_hours" binding:"gte=0"`
	Notes         *string `json:"notes"`
}

// BulkEntry is one cell of the bulk-entry grid: one employee on the shared date.
type BulkEntry struct {
	EmployeeID    int64   `json:"employee_id" binding:"required"`
	Status        string  `json:"status" binding:"required,oneof=Present Absent Late Half-day 'On Leave'"`
	OvertimeHours float64 `json:"overtime_hours" binding:"gte=0"`
	Notes         *string `json:"notes"`
}

type BulkCreateRequest struct {
	Date    string      `json:"date" binding:"required"`
	Entries []BulkEntry `json:"entries" binding:"required,min=1,dive"`
}

type ListAttendanceFilter struct {
	EmployeeID int64  `form:"employee_id"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
}

type AttendanceResponse struct {
	ID            int64   `json:"id"`
	EmployeeID    int64   `json:"employee_id"`
	Date          string  `json:"date"`
	Status        string  `json:"status"`
	OvertimeHours float64 `json:"overtime_hours"`
	Notes         *string `json:"notes,omitempty"`
}
