package attendance

import "errors"

var (
	ErrAlreadyClockedIn   = errors.New("you are already clocked in for today")
	ErrNotClockedIn       = errors.New("no active clock-in found")
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrNoEmployeeProfile  = errors.New("no employee profile linked to this account")
)
