package attendance_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-hradmin/internal/attendance"
	attendanceerrors "go-hradmin/internal/attendance/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeAttendanceRepository struct {
	withTxFn          func(tx *sql.Tx) attendance.Repository
	createFn          func(ctx context.Context, a *attendance.Attendance) error
	createBatchFn     func(ctx context.Context, rows []attendance.Attendance) error
	findByIDFn        func(ctx context.Context, id int64) (*attendance.Attendance, error)
	findAllFn         func(ctx context.Context, filter attendance.ListAttendanceFilter) ([]attendance.Attendance, error)
	findByDateRangeFn func(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error)
	updateFn          func(ctx context.Context, a *attendance.Attendance) error
	deleteFn          func(ctx context.Context, id int64) error
	employeeExistsFn  func(ctx context.Context, employeeID int64) (bool, error)
}

func (f *fakeAttendanceRepository) WithTx(tx *sql.Tx) attendance.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeAttendanceRepository) Create(ctx context.Context, a *attendance.Attendance) error {
	if f.createFn != nil {
		return f.createFn(ctx, a)
	}
	return nil
}

func (f *fakeAttendanceRepository) CreateBatch(ctx context.Context, rows []attendance.Attendance) error {
	if f.createBatchFn != nil {
		return f.createBatchFn(ctx, rows)
	}
	return nil
}

func (f *fakeAttendanceRepository) FindByID(ctx context.Context, id int64) (*attendance.Attendance, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttendanceRepository) FindAll(ctx context.Context, filter attendance.ListAttendanceFilter) ([]attendance.Attendance, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeAttendanceRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	if f.findByDateRangeFn != nil {
		return f.findByDateRangeFn(ctx, start, end)
	}
	return nil, nil
}

func (f *fakeAttendanceRepository) Update(ctx context.Context, a *attendance.Attendance) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, a)
	}
	return nil
}

func (f *fakeAttendanceRepository) Delete(ctx context.Context, id int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeAttendanceRepository) EmployeeExists(ctx context.Context, employeeID int64) (bool, error) {
	if f.employeeExistsFn != nil {
		return f.employeeExistsFn(ctx, employeeID)
	}
	return true, nil
}

type attendanceServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service attendance.Service
	repo    *fakeAttendanceRepository
}

func setupAttendanceServiceTest(t *testing.T) *attendanceServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeAttendanceRepository{}
	svc := attendance.NewService(db, repo)

	return &attendanceServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestAttendanceService_Create(t *testing.T) {
	ctx := context.Background()

	deps := setupAttendanceServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)
	deps.repo.createFn = func(ctx context.Context, a *attendance.Attendance) error {
		a.ID = 11
		assert.Equal(t, int64(42), a.EmployeeID)
		assert.Equal(t, "Present", a.Status)
		assert.Equal(t, 3.0, a.OvertimeHours)
		return nil
	}

	resp, err := deps.service.Create(ctx, attendance.CreateAttendanceRequest{
		EmployeeID:    42,
		Date:          "2026-02-02",
		Status:        "Present",
		OvertimeHours: 3,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, "2026-02-02", resp.Date)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestAttendanceService_Create_InvalidDate(t *testing.T) {
	ctx := context.Background()

	deps := setupAttendanceServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)

	_, err := deps.service.Create(ctx, attendance.CreateAttendanceRequest{
		EmployeeID: 42,
		Date:       "02/02/2026",
		Status:     "Present",
	})

	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDateFormat)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestAttendanceService_Create_EmployeeNotFound(t *testing.T) {
	ctx := context.Background()

	deps := setupAttendanceServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)
	deps.repo.employeeExistsFn = func(ctx context.Context, employeeID int64) (bool, error) {
		return false, nil
	}

	_, err := deps.service.Create(ctx, attendance.CreateAttendanceRequest{
		EmployeeID: 99,
		Date:       "2026-02-02",
		Status:     "Present",
	})

	assert.ErrorIs(t, err, attendanceerrors.ErrEmployeeNotFound)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestAttendanceService_BulkCreate(t *testing.T) {
	ctx := context.Background()

	deps := setupAttendanceServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)

	var batch []attendance.Attendance
	deps.repo.createBatchFn = func(ctx context.Context, rows []attendance.Attendance) error {
		batch = rows
		return nil
	}

	resp, err := deps.service.BulkCreate(ctx, attendance.BulkCreateRequest{
		Date: "2026-02-02",
		Entries: []attendance.BulkEntry{
			{EmployeeID: 1, Status: "Present", OvertimeHours: 2},
			{EmployeeID: 2, Status: "Half-day"},
			{EmployeeID: 3, Status: "On Leave"},
		},
	})

	assert.NoError(t, err)
	assert.Len(t, resp, 3)
	assert.Len(t, batch, 3)
	assert.Equal(t, "Half-day", batch[1].Status)
	assert.Equal(t, "2026-02-02", resp[2].Date)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestAttendanceService_BulkCreate_AllOrNothing(t *testing.T) {
	ctx := context.Background()

	deps := setupAttendanceServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)
	deps.repo.employeeExistsFn = func(ctx context.Context, employeeID int64) (bool, error) {
		return employeeID != 2, nil
	}

	created := false
	deps.repo.createBatchFn = func(ctx context.Context, rows []attendance.Attendance) error {
		created = true
		return nil
	}

	_, err := deps.service.BulkCreate(ctx, attendance.BulkCreateRequest{
		Date: "2026-02-02",
		Entries: []attendance.BulkEntry{
			{EmployeeID: 1, Status: "Present"},
			{EmployeeID: 2, Status: "Present"},
		},
	})

	assert.ErrorIs(t, err, attendanceerrors.ErrEmployeeNotFound)
	assert.False(t, created)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestAttendanceService_GetAll_ValidatesFilterDates(t *testing.T) {
	ctx := context.Background()

	deps := setupAttendanceServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.GetAll(ctx, attendance.ListAttendanceFilter{StartDate: "Feb 1"})

	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDateFormat)
}

func TestAttendanceService_Update(t *testing.T) {
	ctx := context.Background()

	deps := setupAttendanceServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)
	deps.repo.findByIDFn = func(ctx context.Context, id int64) (*attendance.Attendance, error) {
		return &attendance.Attendance{
			ID:         id,
			EmployeeID: 42,
			Date:       time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC),
			Status:     "Present",
		}, nil
	}

	resp, err := deps.service.Update(ctx, 11, attendance.UpdateAttendanceRequest{
		Status:        "Half-day",
		OvertimeHours: 0,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Half-day", resp.Status)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestAttendanceService_Update_NotFound(t *testing.T) {
	ctx := context.Background()

	deps := setupAttendanceServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)

	_, err := deps.service.Update(ctx, 404, attendance.UpdateAttendanceRequest{Status: "Present"})

	assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceNotFound)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}
