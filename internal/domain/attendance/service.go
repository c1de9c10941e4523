package attendance

import "context"

// AttendanceService defines business logic for attendance operations. The
// acting employee is taken from the request session.
type AttendanceService interface {
	// ClockIn opens today's attendance record for the logged-in employee.
	ClockIn(ctx context.Context) (ClockResponse, error)

	// ClockOut closes the employee's open record and reports hours worked.
	ClockOut(ctx context.Context) (ClockResponse, error)

	// MyAttendance retrieves attendance history for the logged-in employee.
	MyAttendance(ctx context.Context, filter MyAttendanceFilter) (ListResponse, error)
}
