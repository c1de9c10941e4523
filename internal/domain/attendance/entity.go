package attendance

import "time"

const StatusPresent = "Present"

type Attendance struct {
	AttendanceID string
	EmployeeID   string
	Date         time.Time
	TimeIn       time.Time
	TimeOut      *time.Time
	Status       string
	CreatedAt    time.Time
}

// Open reports whether the record is still waiting for a clock-out.
func (a *Attendance) Open() bool {
	return a.TimeOut == nil
}
