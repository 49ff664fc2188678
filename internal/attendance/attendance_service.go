package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	attendanceerrors "go-hradmin/internal/attendance/errors"
	"go-hradmin/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)
	BulkCreate(ctx context.Context, req BulkCreateRequest) ([]AttendanceResponse, error)
	GetAll(ctx context.Context, filter ListAttendanceFilter) ([]AttendanceResponse, error)
	GetByID(ctx context.Context, id int64) (AttendanceResponse, error)
	Update(ctx context.Context, id int64, req UpdateAttendanceRequest) (AttendanceResponse, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDateFormat
	}

	exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		return AttendanceResponse{}, err
	}
	if !exists {
		return AttendanceResponse{}, attendanceerrors.ErrEmployeeNotFound
	}

	row := &Attendance{
		EmployeeID:    req.EmployeeID,
		Date:          date,
		Status:        req.Status,
		OvertimeHours: req.OvertimeHours,
		Notes:         req.Notes,
	}

	if err := qtx.Create(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}
	return mapToResponse(*row), nil
}

// BulkCreate writes one grid submission: a shared date across many employees.
// The whole batch commits or none of it does.
func (s *service) BulkCreate(ctx context.Context, req BulkCreateRequest) ([]AttendanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("bulk attendance entry requested",
		zap.String("date", req.Date),
		zap.Int("entries", len(req.Entries)),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidDateFormat
	}

	rows := make([]Attendance, len(req.Entries))
	for i, entry := range req.Entries {
		exists, err := qtx.EmployeeExists(ctx, entry.EmployeeID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, attendanceerrors.ErrEmployeeNotFound
		}

		rows[i] = Attendance{
			EmployeeID:    entry.EmployeeID,
			Date:          date,
			Status:        entry.Status,
			OvertimeHours: entry.OvertimeHours,
			Notes:         entry.Notes,
		}
	}

	if err := qtx.CreateBatch(ctx, rows); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	res := make([]AttendanceResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row)
	}
	return res, nil
}

func (s *service) GetAll(ctx context.Context, filter ListAttendanceFilter) ([]AttendanceResponse, error) {
	if filter.StartDate != "" {
		if _, err := time.Parse(dateLayout, filter.StartDate); err != nil {
			return nil, attendanceerrors.ErrInvalidDateFormat
		}
	}
	if filter.EndDate != "" {
		if _, err := time.Parse(dateLayout, filter.EndDate); err != nil {
			return nil, attendanceerrors.ErrInvalidDateFormat
		}
	}

	rows, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	res := make([]AttendanceResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (AttendanceResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrAttendanceNotFound
		}
		return AttendanceResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateAttendanceRequest) (AttendanceResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrAttendanceNotFound
		}
		return AttendanceResponse{}, err
	}

	row.Status = req.Status
	row.OvertimeHours = req.OvertimeHours
	if req.Notes != nil {
		row.Notes = req.Notes
	}

	if err := qtx.Update(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}
	return tx.Commit()
}

func mapToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		Date:          a.Date.Format(dateLayout),
		Status:        a.Status,
		OvertimeHours: a.OvertimeHours,
		Notes:         a.Notes,
	}
}
