package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/peopleops-dev/hr-portal-go/internal/domain/attendance"
	"github.com/peopleops-dev/hr-portal-go/internal/pkg/database"
)

// uniqueViolation is the PostgreSQL error code raised by the partial unique
// index guarding one open attendance row per employee.
const uniqueViolation = "23505"

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// CreateOpen implements attendance.AttendanceRepository. The existence check
// and insert share one transaction; two racing clock-ins serialize on the
// partial unique index and the loser gets ErrAlreadyClockedIn.
func (r *attendanceRepository) CreateOpen(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		existing, err := r.GetOpenByEmployeeAndDate(txCtx, record.EmployeeID, record.Date)
		if err != nil {
			return err
		}
		if existing != nil {
			return attendance.ErrAlreadyClockedIn
		}

		q := GetQuerier(txCtx, r.db)
		query := `
			INSERT INTO attendance (employee_id, date, time_in, time_out, status)
			VALUES ($1, $2, $3, NULL, $4)
			RETURNING attendance_id, created_at
		`
		return q.QueryRow(txCtx, query,
			record.EmployeeID,
			record.Date,
			record.TimeIn,
			record.Status,
		).Scan(&record.AttendanceID, &record.CreatedAt)
	})

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
		if errors.Is(err, attendance.ErrAlreadyClockedIn) {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return record, nil
}

// GetOpenByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetOpenByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT attendance_id, employee_id, date, time_in, time_out, status, created_at
		FROM attendance
		WHERE employee_id = $1
		  AND date = $2
		  AND time_out IS NULL
		LIMIT 1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&att.AttendanceID, &att.EmployeeID, &att.Date, &att.TimeIn, &att.TimeOut,
		&att.Status, &att.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no open record today
		}
		return nil, fmt.Errorf("failed to get open attendance by date: %w", err)
	}

	return &att, nil
}

// GetLatestOpen implements attendance.AttendanceRepository. Ordered by
// time_in descending so that, were the one-open-record invariant ever
// violated, only the latest record gets closed.
func (r *attendanceRepository) GetLatestOpen(ctx context.Context, employeeID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT attendance_id, employee_id, date, time_in, time_out, status, created_at
		FROM attendance
		WHERE employee_id = $1
		  AND time_out IS NULL
		ORDER BY time_in DESC
		LIMIT 1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&att.AttendanceID, &att.EmployeeID, &att.Date, &att.TimeIn, &att.TimeOut,
		&att.Status, &att.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrNotClockedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get latest open attendance: %w", err)
	}

	return att, nil
}

// Close implements attendance.AttendanceRepository.
func (r *attendanceRepository) Close(ctx context.Context, attendanceID string, timeOut time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET time_out = $1
		WHERE attendance_id = $2
		  AND time_out IS NULL
	`

	tag, err := q.Exec(ctx, query, timeOut, attendanceID)
	if err != nil {
		return fmt.Errorf("failed to close attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, filter attendance.MyAttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "WHERE employee_id = $1"
	args := []interface{}{employeeID}

	if filter.StartDate != "" {
		args = append(args, filter.StartDate)
		where += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if filter.EndDate != "" {
		args = append(args, filter.EndDate)
		where += fmt.Sprintf(" AND date <= $%d", len(args))
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM attendance " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)

	query := fmt.Sprintf(`
		SELECT attendance_id, employee_id, date, time_in, time_out, status, created_at
		FROM attendance
		%s
		ORDER BY date DESC, time_in DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.AttendanceID, &att.EmployeeID, &att.Date, &att.TimeIn, &att.TimeOut,
			&att.Status, &att.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendance rows: %w", err)
	}

	return records, total, nil
}
