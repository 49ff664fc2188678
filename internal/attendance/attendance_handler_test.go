package attendance_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hradmin/internal/attendance"
	attendanceerrors "go-hradmin/internal/attendance/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeAttendanceService struct {
	createFn     func(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error)
	bulkCreateFn func(ctx context.Context, req attendance.BulkCreateRequest) ([]attendance.AttendanceResponse, error)
	getAllFn     func(ctx context.Context, filter attendance.ListAttendanceFilter) ([]attendance.AttendanceResponse, error)
	getByIDFn    func(ctx context.Context, id int64) (attendance.AttendanceResponse, error)
	updateFn     func(ctx context.Context, id int64, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error)
	deleteFn     func(ctx context.Context, id int64) error
}

func (f *fakeAttendanceService) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	return f.createFn(ctx, req)
}

func (f *fakeAttendanceService) BulkCreate(ctx context.Context, req attendance.BulkCreateRequest) ([]attendance.AttendanceResponse, error) {
	return f.bulkCreateFn(ctx, req)
}

func (f *fakeAttendanceService) GetAll(ctx context.Context, filter attendance.ListAttendanceFilter) ([]attendance.AttendanceResponse, error) {
	return f.getAllFn(ctx, filter)
}

func (f *fakeAttendanceService) GetByID(ctx context.Context, id int64) (attendance.AttendanceResponse, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeAttendanceService) Update(ctx context.Context, id int64, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	return f.updateFn(ctx, id, req)
}

func (f *fakeAttendanceService) Delete(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

func TestAttendanceHandler_Create(t *testing.T) {
	svc := &fakeAttendanceService{
		createFn: func(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
			assert.Equal(t, int64(42), req.EmployeeID)
			assert.Equal(t, "On Leave", req.Status)
			return attendance.AttendanceResponse{ID: 11, EmployeeID: req.EmployeeID, Date: req.Date, Status: req.Status}, nil
		},
	}

	h := attendance.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"employee_id":42,"date":"2026-02-02","status":"On Leave"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/attendances", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestAttendanceHandler_Create_RejectsUnknownStatus(t *testing.T) {
	h := attendance.NewHandler(&fakeAttendanceService{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"employee_id":42,"date":"2026-02-02","status":"Vacation"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/attendances", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
}

func TestAttendanceHandler_BulkCreate(t *testing.T) {
	svc := &fakeAttendanceService{
		bulkCreateFn: func(ctx context.Context, req attendance.BulkCreateRequest) ([]attendance.AttendanceResponse, error) {
			assert.Len(t, req.Entries, 2)
			res := make([]attendance.AttendanceResponse, len(req.Entries))
			for i, e := range req.Entries {
				res[i] = attendance.AttendanceResponse{ID: int64(i + 1), EmployeeID: e.EmployeeID, Date: req.Date, Status: e.Status}
			}
			return res, nil
		},
	}

	h := attendance.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"date":"2026-02-02","entries":[{"employee_id":1,"status":"Present"},{"employee_id":2,"status":"Absent"}]}`
	c.Request = httptest.NewRequest(http.MethodPost, "/attendances/bulk", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.BulkCreate(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)

	var res []attendance.AttendanceResponse
	assert.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Len(t, res, 2)
}

func TestAttendanceHandler_GetAll_Pagination(t *testing.T) {
	all := make([]attendance.AttendanceResponse, 15)
	for i := range all {
		all[i] = attendance.AttendanceResponse{ID: int64(i + 1), Status: "Present"}
	}

	svc := &fakeAttendanceService{
		getAllFn: func(ctx context.Context, filter attendance.ListAttendanceFilter) ([]attendance.AttendanceResponse, error) {
			assert.Equal(t, int64(42), filter.EmployeeID)
			return all, nil
		},
	}

	h := attendance.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/attendances?employee_id=42&page=2&page_size=10", nil)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)

	var page []attendance.AttendanceResponse
	assert.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Len(t, page, 5)
}

func TestAttendanceHandler_GetByID_NotFound(t *testing.T) {
	svc := &fakeAttendanceService{
		getByIDFn: func(ctx context.Context, id int64) (attendance.AttendanceResponse, error) {
			return attendance.AttendanceResponse{}, attendanceerrors.ErrAttendanceNotFound
		},
	}

	h := attendance.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/attendances/404", nil)
	c.Params = []gin.Param{{Key: "id", Value: "404"}}

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestAttendanceHandler_Delete(t *testing.T) {
	svc := &fakeAttendanceService{
		deleteFn: func(ctx context.Context, id int64) error {
			assert.Equal(t, int64(11), id)
			return nil
		},
	}

	h := attendance.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/attendances/11", nil)
	c.Params = []gin.Param{{Key: "id", Value: "11"}}

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}
