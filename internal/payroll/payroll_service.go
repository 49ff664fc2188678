package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"go-hradmin/internal/events"
	"go-hradmin/internal/messaging/kafka"
	"go-hradmin/internal/paycalc"
	payrollerrors "go-hradmin/internal/payroll/errors"
	"go-hradmin/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, req GeneratePayrollRequest) (PayrollResponse, error)
	GenerateBulk(ctx context.Context, req BulkGeneratePayrollRequest) (BulkGeneratePayrollResponse, error)
	GetAll(ctx context.Context, filter GetPayrollsFilterRequest) ([]PayrollResponse, error)
	GetByID(ctx context.Context, id int64) (PayrollResponse, error)
	Regenerate(ctx context.Context, id int64) (PayrollResponse, error)
	Submit(ctx context.Context, id int64) (PayrollResponse, error)
	Approve(ctx context.Context, id int64) (PayrollResponse, error)
	MarkAsPaid(ctx context.Context, id int64) (PayrollResponse, error)
	Delete(ctx context.Context, id int64) error
	RequestPayslip(ctx context.Context, id int64) error
	GeneratePayslip(ctx context.Context, id int64) (PayrollResponse, error)
	GetPayslipPDF(ctx context.Context, id int64) ([]byte, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	cfg    paycalc.Config
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, cfg paycalc.Config) Service {
	return NewServiceWithOutbox(db, repo, nil, cfg)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	cfg paycalc.Config,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		cfg:    cfg,
		logger: l,
	}
}

// Generate runs the calculation pipeline for one employee and persists the
// result as a Draft. All arithmetic lives in paycalc; this method only moves
// data in and out.
func (s *service) Generate(ctx context.Context, req GeneratePayrollRequest) (PayrollResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("generate payroll requested",
		zap.String("request_id", rid),
		zap.Int64("employee_id", req.EmployeeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	period, err := parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return PayrollResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := qtx.FindEmployeeForPayroll(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollResponse{}, payrollerrors.ErrEmployeeNotFound
		}
		return PayrollResponse{}, err
	}

	overlap, err := qtx.HasOverlappingPeriod(ctx, req.EmployeeID, period.Start, period.End, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	if overlap {
		return PayrollResponse{}, payrollerrors.ErrPayrollOverlap
	}

	records, err := qtx.FindAttendanceRecordsByEmployee(ctx, req.EmployeeID, period.Start, period.End)
	if err != nil {
		return PayrollResponse{}, err
	}

	computed := paycalc.GeneratePayrollRecord(*emp, records, period, s.cfg, paycalc.Options{
		Bonus:           req.Bonus,
		ExtraDeductions: req.ExtraDeductions,
	})

	row := mapFromComputed(computed, period)
	if err := qtx.Create(ctx, row); err != nil {
		return PayrollResponse{}, err
	}

	if err := s.enqueueGeneratedEvent(ctx, tx, row); err != nil {
		return PayrollResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	return mapToResponse(*row), nil
}

// GenerateBulk runs one period for every employee that is not Inactive.
// Employees that already have an overlapping payroll are skipped and reported
// rather than failing the whole batch.
func (s *service) GenerateBulk(ctx context.Context, req BulkGeneratePayrollRequest) (BulkGeneratePayrollResponse, error) {
	period, err := parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return BulkGeneratePayrollResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BulkGeneratePayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	employees, err := qtx.FindAllEmployeesForPayroll(ctx)
	if err != nil {
		return BulkGeneratePayrollResponse{}, err
	}

	records, err := qtx.FindAttendanceRecords(ctx, period.Start, period.End)
	if err != nil {
		return BulkGeneratePayrollResponse{}, err
	}

	if dropped := len(records) - len(paycalc.InPeriod(records, period)); dropped > 0 {
		s.logger.Warn("attendance records excluded from payroll run",
			zap.String("period", period.Label),
			zap.Int("dropped", dropped),
		)
	}

	eligible := make([]paycalc.EmployeeInfo, 0, len(employees))
	skipped := make([]int64, 0)
	for _, emp := range employees {
		if emp.Status == paycalc.EmployeeInactive {
			continue
		}
		overlap, err := qtx.HasOverlappingPeriod(ctx, emp.ID, period.Start, period.End, nil)
		if err != nil {
			return BulkGeneratePayrollResponse{}, err
		}
		if overlap {
			skipped = append(skipped, emp.ID)
			continue
		}
		eligible = append(eligible, emp)
	}

	computed := paycalc.GenerateBulkPayroll(eligible, records, period, s.cfg)

	resp := BulkGeneratePayrollResponse{
		Generated: make([]PayrollResponse, 0, len(computed)),
		Skipped:   skipped,
	}
	for i := range computed {
		row := mapFromComputed(computed[i], period)
		if err := qtx.Create(ctx, row); err != nil {
			return BulkGeneratePayrollResponse{}, err
		}
		if err := s.enqueueGeneratedEvent(ctx, tx, row); err != nil {
			return BulkGeneratePayrollResponse{}, err
		}
		resp.Generated = append(resp.Generated, mapToResponse(*row))
	}

	if err := tx.Commit(); err != nil {
		return BulkGeneratePayrollResponse{}, err
	}

	s.logger.Info("bulk payroll generated",
		zap.String("period", period.Label),
		zap.Int("generated", len(resp.Generated)),
		zap.Int("skipped", len(skipped)),
	)
	return resp, nil
}

func (s *service) GetAll(ctx context.Context, filter GetPayrollsFilterRequest) ([]PayrollResponse, error) {
	if filter.Status != "" && !isValidStatus(filter.Status) {
		return nil, payrollerrors.ErrInvalidStatusFilter
	}

	payrolls, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	res := make([]PayrollResponse, len(payrolls))
	for i, p := range payrolls {
		res[i] = mapToResponse(p)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (PayrollResponse, error) {
	payroll, err := s.findByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, err
	}
	return mapToResponse(*payroll), nil
}

// Regenerate recomputes a Draft from the current attendance data. Edits never
// patch stored components; they go back through the same generation path.
func (s *service) Regenerate(ctx context.Context, id int64) (PayrollResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := s.findByIDWith(ctx, qtx, id)
	if err != nil {
		return PayrollResponse{}, err
	}
	if row.Status != paycalc.PayrollDraft {
		return PayrollResponse{}, payrollerrors.ErrRegenerateOnlyDraft
	}

	period, err := parsePeriod(row.PeriodStart.Format(dateLayout), row.PeriodEnd.Format(dateLayout))
	if err != nil {
		return PayrollResponse{}, err
	}

	emp, err := qtx.FindEmployeeForPayroll(ctx, row.EmployeeID)
	if err != nil {
		return PayrollResponse{}, err
	}

	records, err := qtx.FindAttendanceRecordsByEmployee(ctx, row.EmployeeID, period.Start, period.End)
	if err != nil {
		return PayrollResponse{}, err
	}

	computed := paycalc.GeneratePayrollRecord(*emp, records, period, s.cfg, paycalc.Options{
		Bonus: row.Bonus,
	})

	row.BaseSalary = computed.BaseSalary
	row.OvertimePay = computed.OvertimePay
	row.Deductions = computed.Deductions
	row.TaxWithholding = computed.TaxWithholding
	row.NetSalary = computed.NetSalary
	row.PayslipPDF = nil
	row.PayslipGeneratedAt = nil

	if err := qtx.Update(ctx, row); err != nil {
		return PayrollResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Submit(ctx context.Context, id int64) (PayrollResponse, error) {
	return s.transition(ctx, id, func(row *Payroll) error {
		if row.Status != paycalc.PayrollDraft {
			return payrollerrors.ErrInvalidStatusTransition
		}
		row.Status = paycalc.PayrollPending
		return nil
	})
}

func (s *service) Approve(ctx context.Context, id int64) (PayrollResponse, error) {
	return s.transition(ctx, id, func(row *Payroll) error {
		if row.Status != paycalc.PayrollDraft && row.Status != paycalc.PayrollPending {
			return payrollerrors.ErrInvalidStatusTransition
		}
		now := time.Now().UTC()
		row.Status = paycalc.PayrollApproved
		row.ApprovedAt = &now
		return nil
	})
}

// MarkAsPaid stamps the payment date. This is workflow bookkeeping, not
// calculation: the stored amounts are untouched.
func (s *service) MarkAsPaid(ctx context.Context, id int64) (PayrollResponse, error) {
	return s.transition(ctx, id, func(row *Payroll) error {
		if row.Status != paycalc.PayrollApproved {
			return payrollerrors.ErrInvalidStatusTransition
		}
		now := time.Now().UTC()
		row.Status = paycalc.PayrollPaid
		row.PaidAt = &now
		return nil
	})
}

func (s *service) Delete(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := s.findByIDWith(ctx, qtx, id)
	if err != nil {
		return err
	}
	if row.Status != paycalc.PayrollDraft {
		return payrollerrors.ErrDeleteOnlyDraft
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}
	return tx.Commit()
}

// RequestPayslip queues payslip rendering through the outbox so the API
// request returns immediately and the consumer does the PDF work.
func (s *service) RequestPayslip(ctx context.Context, id int64) error {
	if s.outbox == nil {
		return payrollerrors.ErrPayslipNotGenerated
	}

	row, err := s.findByID(ctx, id)
	if err != nil {
		return err
	}

	event := events.PayrollPayslipRequestedEvent{
		EventType:  "payroll.payslip.requested",
		PayrollID:  row.ID,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "payroll",
		AggregateID:   strconv.FormatInt(row.ID, 10),
		EventType:     event.EventType,
		Topic:         events.PayrollPayslipRequestedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) GeneratePayslip(ctx context.Context, id int64) (PayrollResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := s.findByIDWith(ctx, qtx, id)
	if err != nil {
		return PayrollResponse{}, err
	}

	pdf, err := buildPayslipPDF(*row)
	if err != nil {
		return PayrollResponse{}, err
	}

	now := time.Now().UTC()
	row.PayslipPDF = pdf
	row.PayslipGeneratedAt = &now

	if err := qtx.Update(ctx, row); err != nil {
		return PayrollResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) GetPayslipPDF(ctx context.Context, id int64) ([]byte, error) {
	row, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(row.PayslipPDF) == 0 {
		return nil, payrollerrors.ErrPayslipNotGenerated
	}
	return row.PayslipPDF, nil
}

func (s *service) transition(ctx context.Context, id int64, apply func(*Payroll) error) (PayrollResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := s.findByIDWith(ctx, qtx, id)
	if err != nil {
		return PayrollResponse{}, err
	}

	if err := apply(row); err != nil {
		return PayrollResponse{}, err
	}

	if err := qtx.Update(ctx, row); err != nil {
		return PayrollResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) findByID(ctx context.Context, id int64) (*Payroll, error) {
	return s.findByIDWith(ctx, s.repo, id)
}

func (s *service) findByIDWith(ctx context.Context, repo Repository, id int64) (*Payroll, error) {
	row, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payrollerrors.ErrPayrollNotFound
		}
		return nil, err
	}
	return row, nil
}

func (s *service) enqueueGeneratedEvent(ctx context.Context, tx *sql.Tx, row *Payroll) error {
	if s.outbox == nil {
		return nil
	}

	event := events.PayrollGeneratedEvent{
		EventType:   "payroll.generated",
		PayrollID:   row.ID,
		EmployeeID:  row.EmployeeID,
		Period:      row.Period,
		NetSalary:   row.NetSalary,
		GeneratedAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "payroll",
		AggregateID:   strconv.FormatInt(row.ID, 10),
		EventType:     event.EventType,
		Topic:         events.PayrollGeneratedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func parsePeriod(startDate, endDate string) (paycalc.Period, error) {
	period, err := paycalc.NewPeriod(startDate, endDate)
	if err != nil {
		if errors.Is(err, paycalc.ErrInvalidPeriod) {
			return paycalc.Period{}, payrollerrors.ErrInvalidDateRange
		}
		return paycalc.Period{}, payrollerrors.ErrInvalidDateFormat
	}
	return period, nil
}

func isValidStatus(status string) bool {
	switch status {
	case paycalc.PayrollDraft, paycalc.PayrollPending, paycalc.PayrollApproved, paycalc.PayrollPaid:
		return true
	default:
		return false
	}
}

func mapFromComputed(computed paycalc.PayrollRecord, period paycalc.Period) *Payroll {
	return &Payroll{
		EmployeeID:     computed.EmployeeID,
		Period:         computed.Period,
		PeriodStart:    period.Start,
		PeriodEnd:      period.End,
		BaseSalary:     computed.BaseSalary,
		OvertimePay:    computed.OvertimePay,
		Bonus:          computed.Bonus,
		Deductions:     computed.Deductions,
		TaxWithholding: computed.TaxWithholding,
		NetSalary:      computed.NetSalary,
		Status:         computed.Status,
	}
}

func mapToResponse(p Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:             p.ID,
		EmployeeID:     p.EmployeeID,
		Period:         p.Period,
		StartDate:      p.PeriodStart.Format(dateLayout),
		EndDate:        p.PeriodEnd.Format(dateLayout),
		BaseSalary:     p.BaseSalary,
		OvertimePay:    p.OvertimePay,
		Bonus:          p.Bonus,
		Deductions:     p.Deductions,
		TaxWithholding: p.TaxWithholding,
		NetSalary:      p.NetSalary,
		Status:         p.Status,
		HasPayslip:     len(p.PayslipPDF) > 0,
	}
	if p.ApprovedAt != nil {
		v := p.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	if p.PaidAt != nil {
		v := p.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &v
	}
	return resp
}
