package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for the attendance ledger.
type AttendanceRepository interface {
	// CreateOpen inserts a new open record if the employee has none for the
	// given date. The check and insert run in one transaction, with a partial
	// unique index as backstop; a losing race returns ErrAlreadyClockedIn.
	CreateOpen(ctx context.Context, record Attendance) (Attendance, error)

	// GetOpenByEmployeeAndDate retrieves the open record for an employee on a
	// civil date, or ErrAlreadyClockedIn's precondition check. Returns
	// (nil, nil) when there is none.
	GetOpenByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// GetLatestOpen retrieves the most recent open record for the employee,
	// ordered by time_in descending.
	GetLatestOpen(ctx context.Context, employeeID string) (Attendance, error)

	// Close sets time_out on the record.
	Close(ctx context.Context, attendanceID string, timeOut time.Time) error

	// ListByEmployee retrieves the employee's records with optional date
	// bounds and pagination.
	ListByEmployee(ctx context.Context, employeeID string, filter MyAttendanceFilter) ([]Attendance, int64, error)
}
