package attendance

// ClockResponse is the result of a clock-in or clock-out. Callers branch on
// the HTTP envelope's success flag and display Message; the other fields are
// operation-specific payload.
type ClockResponse struct {
	AttendanceID string   `json:"attendance_id"`
	Date         string   `json:"date"`
	TimeIn       string   `json:"time_in"`
	TimeOut      *string  `json:"time_out,omitempty"`
	Status       string   `json:"status"`
	HoursWorked  *float64 `json:"hours_worked,omitempty"`
	Message      string   `json:"message"`
}

type RecordResponse struct {
	AttendanceID string  `json:"attendance_id"`
	Date         string  `json:"date"`
	TimeIn       string  `json:"time_in"`
	TimeOut      *string `json:"time_out,omitempty"`
	Status       string  `json:"status"`
}

type MyAttendanceFilter struct {
	StartDate string
	EndDate   string
	Page      int
	Limit     int
}

type ListResponse struct {
	Records    []RecordResponse `json:"records"`
	TotalItems int64            `json:"total_items"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}
