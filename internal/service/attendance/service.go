package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/peopleops-dev/hr-portal-go/internal/domain/attendance"
	"github.com/peopleops-dev/hr-portal-go/internal/domain/auth"
	"github.com/peopleops-dev/hr-portal-go/internal/pkg/clock"
	"github.com/peopleops-dev/hr-portal-go/internal/pkg/session"
	"github.com/peopleops-dev/hr-portal-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	clk clock.Clock
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository, clk clock.Clock) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		clk:                  clk,
	}
}

// ClockIn implements attendance.AttendanceService. Out -> In; a second
// clock-in on the same day is rejected and leaves the ledger unchanged.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context) (attendance.ClockResponse, error) {
	employeeID, err := employeeFromSession(ctx)
	if err != nil {
		return attendance.ClockResponse{}, err
	}

	now := s.clk.Now()
	today := civilDate(now)

	existing, err := s.AttendanceRepository.GetOpenByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.ClockResponse{}, fmt.Errorf("failed to check open attendance: %w", err)
	}
	if existing != nil {
		return attendance.ClockResponse{}, attendance.ErrAlreadyClockedIn
	}

	record, err := s.AttendanceRepository.CreateOpen(ctx, attendance.Attendance{
		EmployeeID: employeeID,
		Date:       today,
		TimeIn:     now,
		Status:     attendance.StatusPresent,
	})
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyClockedIn) {
			return attendance.ClockResponse{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.ClockResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return attendance.ClockResponse{
		AttendanceID: record.AttendanceID,
		Date:         record.Date.Format("2006-01-02"),
		TimeIn:       record.TimeIn.Format("15:04:05"),
		Status:       record.Status,
		Message:      fmt.Sprintf("Clocked in successfully at %s.", record.TimeIn.Format("03:04 PM")),
	}, nil
}

// ClockOut implements attendance.AttendanceService. In -> Out; duration is
// measured from the stored time_in to the new time_out, not from request
// time, so it stays correct across clock drift within the request.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context) (attendance.ClockResponse, error) {
	employeeID, err := employeeFromSession(ctx)
	if err != nil {
		return attendance.ClockResponse{}, err
	}

	open, err := s.AttendanceRepository.GetLatestOpen(ctx, employeeID)
	if err != nil {
		if errors.Is(err, attendance.ErrNotClockedIn) {
			return attendance.ClockResponse{}, attendance.ErrNotClockedIn
		}
		return attendance.ClockResponse{}, fmt.Errorf("failed to get open attendance: %w", err)
	}

	now := s.clk.Now()
	if err := s.AttendanceRepository.Close(ctx, open.AttendanceID, now); err != nil {
		return attendance.ClockResponse{}, fmt.Errorf("failed to close attendance record: %w", err)
	}

	timeOut := now.Format("15:04:05")
	resp := attendance.ClockResponse{
		AttendanceID: open.AttendanceID,
		Date:         open.Date.In(clock.Location).Format("2006-01-02"),
		TimeIn:       open.TimeIn.In(clock.Location).Format("15:04:05"),
		TimeOut:      &timeOut,
		Status:       open.Status,
	}

	elapsed := now.Sub(open.TimeIn)
	if elapsed < time.Minute {
		zero := 0.0
		resp.HoursWorked = &zero
		resp.Message = "Clocked out. You were clocked in for less than a minute."
		return resp, nil
	}

	// Whole-minute truncation first, then the fractional-hour conversion.
	// Payroll figures depend on this exact order.
	totalMinutes := int(elapsed.Minutes())
	hours := totalMinutes / 60
	minutes := totalMinutes % 60

	hoursWorked := math.Round(float64(totalMinutes)/60.0*100) / 100
	resp.HoursWorked = &hoursWorked
	resp.Message = fmt.Sprintf("Clocked out successfully. You worked %s and %s.",
		pluralize(hours, "hour"), pluralize(minutes, "minute"))

	return resp, nil
}

// MyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) (attendance.ListResponse, error) {
	employeeID, err := employeeFromSession(ctx)
	if err != nil {
		return attendance.ListResponse{}, err
	}

	if err := validateFilter(filter); err != nil {
		return attendance.ListResponse{}, err
	}

	records, total, err := s.AttendanceRepository.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return attendance.ListResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	resp := attendance.ListResponse{
		Records:    make([]attendance.RecordResponse, 0, len(records)),
		TotalItems: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	if resp.Page <= 0 {
		resp.Page = 1
	}
	if resp.Limit <= 0 {
		resp.Limit = 20
	}

	for _, rec := range records {
		item := attendance.RecordResponse{
			AttendanceID: rec.AttendanceID,
			Date:         rec.Date.In(clock.Location).Format("2006-01-02"),
			TimeIn:       rec.TimeIn.In(clock.Location).Format("15:04:05"),
			Status:       rec.Status,
		}
		if rec.TimeOut != nil {
			out := rec.TimeOut.In(clock.Location).Format("15:04:05")
			item.TimeOut = &out
		}
		resp.Records = append(resp.Records, item)
	}

	return resp, nil
}

// employeeFromSession resolves the acting employee from the request session.
func employeeFromSession(ctx context.Context) (string, error) {
	sess, err := session.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get session from context: %w", err)
	}

	data := sess.Data()
	if !data.LoggedIn {
		return "", auth.ErrNotAuthenticated
	}
	if data.EmployeeID == nil || *data.EmployeeID == "" {
		return "", attendance.ErrNoEmployeeProfile
	}
	return *data.EmployeeID, nil
}

func validateFilter(filter attendance.MyAttendanceFilter) error {
	var errs validator.ValidationErrors

	if filter.StartDate != "" {
		if _, ok := validator.IsValidDate(filter.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if filter.EndDate != "" {
		if _, ok := validator.IsValidDate(filter.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// civilDate truncates a time to its civil date in the portal timezone.
func civilDate(t time.Time) time.Time {
	t = t.In(clock.Location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, clock.Location)
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
