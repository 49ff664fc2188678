package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"go-hradmin/internal/employee"
	employeeerrors "go-hradmin/internal/employee/errors"
	"go-hradmin/internal/paycalc"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeEmployeeRepository struct {
	withTxFn   func(tx *sql.Tx) employee.Repository
	createFn   func(ctx context.Context, e *employee.Employee) error
	findAllFn  func(ctx context.Context) ([]employee.Employee, error)
	findByIDFn func(ctx context.Context, id int64) (*employee.Employee, error)
	updateFn   func(ctx context.Context, e *employee.Employee) error
	deleteFn   func(ctx context.Context, id int64) error
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, e)
	}
	return nil
}

func (f *fakeEmployeeRepository) FindAll(ctx context.Context) ([]employee.Employee, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id int64) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, e)
	}
	return nil
}

func (f *fakeEmployeeRepository) Delete(ctx context.Context, id int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type employeeServiceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	redisMock redismock.ClientMock
	service   employee.Service
	repo      *fakeEmployeeRepository
}

func setupEmployeeServiceTest(t *testing.T) *employeeServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	rdb, redisMock := redismock.NewClientMock()
	repo := &fakeEmployeeRepository{}
	svc := employee.NewService(db, repo, rdb)

	return &employeeServiceDeps{db: db, sqlMock: sqlMock, redisMock: redisMock, service: svc, repo: repo}
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

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)
	deps.redisMock.ExpectDel("employees:options").SetVal(1)

	deps.repo.createFn = func(ctx context.Context, e *employee.Employee) error {
		e.ID = 42
		assert.Equal(t, paycalc.EmployeeActive, e.Status)
		assert.Equal(t, 22000.0, e.MonthlySalary)
		return nil
	}

	resp, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
		FullName:      "Ana Cruz",
		Email:         "ana.cruz@example.com",
		Position:      "Accountant",
		MonthlySalary: 22000,
		HireDate:      "2024-06-01",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, paycalc.EmployeeActive, resp.Status)
	assert.NotNil(t, resp.HireDate)
	assert.Equal(t, "2024-06-01", *resp.HireDate)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	assert.NoError(t, deps.redisMock.ExpectationsWereMet())
}

func TestEmployeeService_Create_InvalidHireDate(t *testing.T) {
	ctx := context.Background()

	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)

	_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
		FullName: "Ana Cruz",
		Email:    "ana.cruz@example.com",
		HireDate: "June 1st",
	})

	assert.ErrorIs(t, err, employeeerrors.ErrInvalidHireDate)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestEmployeeService_Create_DuplicateEmail(t *testing.T) {
	ctx := context.Background()

	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)
	deps.repo.createFn = func(ctx context.Context, e *employee.Employee) error {
		return &pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_email"}
	}

	_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
		FullName: "Ana Cruz",
		Email:    "ana.cruz@example.com",
	})

	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestEmployeeService_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()

	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.GetByID(ctx, 404)

	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestEmployeeService_GetOptions_CacheMiss(t *testing.T) {
	ctx := context.Background()

	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	deps.redisMock.ExpectGet("employees:options").RedisNil()

	deps.repo.findAllFn = func(ctx context.Context) ([]employee.Employee, error) {
		return []employee.Employee{
			{ID: 1, FullName: "Ana Cruz"},
			{ID: 2, FullName: "Ben Reyes"},
		}, nil
	}

	expected := []employee.EmployeeOption{
		{ID: 1, FullName: "Ana Cruz"},
		{ID: 2, FullName: "Ben Reyes"},
	}
	payload, err := json.Marshal(expected)
	assert.NoError(t, err)
	deps.redisMock.ExpectSet("employees:options", payload, 5*time.Minute).SetVal("OK")

	options, err := deps.service.GetOptions(ctx)

	assert.NoError(t, err)
	assert.Equal(t, expected, options)
	assert.NoError(t, deps.redisMock.ExpectationsWereMet())
}

func TestEmployeeService_GetOptions_CacheHit(t *testing.T) {
	ctx := context.Background()

	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	cached := []employee.EmployeeOption{{ID: 1, FullName: "Ana Cruz"}}
	payload, err := json.Marshal(cached)
	assert.NoError(t, err)
	deps.redisMock.ExpectGet("employees:options").SetVal(string(payload))

	repoCalled := false
	deps.repo.findAllFn = func(ctx context.Context) ([]employee.Employee, error) {
		repoCalled = true
		return nil, nil
	}

	options, err := deps.service.GetOptions(ctx)

	assert.NoError(t, err)
	assert.Equal(t, cached, options)
	assert.False(t, repoCalled)
	assert.NoError(t, deps.redisMock.ExpectationsWereMet())
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()

	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)
	deps.redisMock.ExpectDel("employees:options").SetVal(1)

	deps.repo.findByIDFn = func(ctx context.Context, id int64) (*employee.Employee, error) {
		return &employee.Employee{ID: id, FullName: "Ana Cruz", Email: "ana.cruz@example.com", Status: paycalc.EmployeeActive}, nil
	}

	resp, err := deps.service.Update(ctx, 42, employee.UpdateEmployeeRequest{
		FullName:      "Ana Cruz",
		Email:         "ana.cruz@example.com",
		MonthlySalary: 25000,
		Status:        paycalc.EmployeeInactive,
	})

	assert.NoError(t, err)
	assert.Equal(t, paycalc.EmployeeInactive, resp.Status)
	assert.Equal(t, 25000.0, resp.MonthlySalary)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	assert.NoError(t, deps.redisMock.ExpectationsWereMet())
}
