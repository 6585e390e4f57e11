package usecase

import (
	"errors"
	"math"
	"time"

	"hr-management-backend/internal/metrics"
	"hr-management-backend/internal/model"
	"hr-management-backend/internal/repository"
)

// PayslipSender delivers a payslip for one payroll row.
type PayslipSender interface {
	SendPayslip(payroll *model.Payroll) error
}

type GenerateInput struct {
	Month       string `json:"month"`
	Year        string `json:"year"`
	EmployeeIDs []uint `json:"employee_ids"`
}

type GenerateResult struct {
	Payrolls []model.Payroll `json:"payrolls"`
	// Skipped lists employees whose payroll for the period is already paid.
	Skipped []uint `json:"skipped"`
}

type PayrollUsecase struct {
	repo          repository.PayrollRepository
	employeeRepo  repository.EmployeeRepository
	timesheetRepo repository.TimesheetRepository
	rewardRepo    repository.RewardRepository
	sender        PayslipSender
	standardHours float64
	now           func() time.Time
}

func NewPayrollUsecase(
	repo repository.PayrollRepository,
	employeeRepo repository.EmployeeRepository,
	timesheetRepo repository.TimesheetRepository,
	rewardRepo repository.RewardRepository,
	sender PayslipSender,
	standardHours float64,
) *PayrollUsecase {
	return &PayrollUsecase{
		repo:          repo,
		employeeRepo:  employeeRepo,
		timesheetRepo: timesheetRepo,
		rewardRepo:    rewardRepo,
		sender:        sender,
		standardHours: standardHours,
		now:           time.Now,
	}
}

func (u *PayrollUsecase) Generate(input GenerateInput) (*GenerateResult, error) {
	month, year, err := NormalizePeriod(input.Month, input.Year)
	if err != nil {
		return nil, err
	}

	ids := uniqueIDs(input.EmployeeIDs)
	employees, err := u.employeeRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(ids) > 0 && len(employees) != len(ids) {
		return nil, invalid("one or more employees do not exist")
	}

	sheets, err := u.timesheetRepo.GetByMonth(month, year)
	if err != nil {
		return nil, err
	}
	records, err := u.rewardRepo.GetByMonth(month, year)
	if err != nil {
		return nil, err
	}

	sheetsByEmployee := make(map[uint][]model.Timesheet)
	for _, ts := range sheets {
		sheetsByEmployee[ts.EmployeeID] = append(sheetsByEmployee[ts.EmployeeID], ts)
	}
	recordsByEmployee := make(map[uint][]model.RewardDiscipline)
	for _, r := range records {
		recordsByEmployee[r.EmployeeID] = append(recordsByEmployee[r.EmployeeID], r)
	}

	result := &GenerateResult{Payrolls: []model.Payroll{}, Skipped: []uint{}}
	for _, emp := range employees {
		// A full run covers active staff only; explicit ids are honoured as given.
		if len(ids) == 0 && emp.Status != model.EmployeeActive {
			continue
		}

		payroll, err := u.repo.GetByPeriod(emp.ID, month, year)
		switch {
		case err == nil:
			if payroll.Status == model.PayrollPaid {
				result.Skipped = append(result.Skipped, emp.ID)
				continue
			}
		case errors.Is(translate(err), ErrNotFound):
			payroll = &model.Payroll{EmployeeID: emp.ID, Month: month, Year: year}
		default:
			return nil, err
		}

		computed := CalculatePayroll(emp.SalaryGrade, sheetsByEmployee[emp.ID], recordsByEmployee[emp.ID], u.standardHours)
		payroll.WorkDays = computed.WorkDays
		payroll.WorkingHours = computed.WorkingHours
		payroll.BaseSalary = computed.BaseSalary
		payroll.Allowance = computed.Allowance
		payroll.Bonus = computed.Bonus
		payroll.Deduction = computed.Deduction
		payroll.NetSalary = computed.NetSalary
		payroll.Status = model.PayrollDraft

		if err := u.repo.Save(payroll); err != nil {
			return nil, translate(err)
		}
		metrics.PayrollsGenerated.Inc()

		payroll.Employee = emp
		result.Payrolls = append(result.Payrolls, *payroll)
	}
	return result, nil
}

// uniqueIDs drops repeated ids, keeping first-seen order.
func uniqueIDs(ids []uint) []uint {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// CalculatePayroll derives the money columns of a payroll from one month of
// timesheets and reward/discipline records. Base salary is pro-rated by
// worked hours against standardHours and capped at the full grade amount.
func CalculatePayroll(grade *model.SalaryGrade, sheets []model.Timesheet, records []model.RewardDiscipline, standardHours float64) model.Payroll {
	var p model.Payroll

	for _, ts := range sheets {
		if ts.WorkingHours > 0 {
			p.WorkDays++
			p.WorkingHours += ts.WorkingHours
		}
	}
	p.WorkingHours = math.Round(p.WorkingHours*100) / 100

	if grade != nil {
		ratio := 1.0
		if standardHours > 0 {
			ratio = math.Min(1, p.WorkingHours/standardHours)
		}
		p.BaseSalary = int64(math.Round(grade.MonthlyBase() * ratio))
		p.Allowance = grade.Allowance
	}

	for _, r := range records {
		switch r.Kind {
		case model.KindReward:
			p.Bonus += r.Amount
		case model.KindDiscipline:
			p.Deduction += r.Amount
		}
	}

	p.NetSalary = p.BaseSalary + p.Allowance + p.Bonus - p.Deduction
	if p.NetSalary < 0 {
		p.NetSalary = 0
	}
	return p
}

func (u *PayrollUsecase) List(month, year string, employeeID uint) ([]model.Payroll, error) {
	if month != "" || year != "" {
		var err error
		if month, year, err = NormalizePeriod(month, year); err != nil {
			return nil, err
		}
	}
	return u.repo.GetAll(month, year, employeeID)
}

func (u *PayrollUsecase) Get(id uint) (*model.Payroll, error) {
	payroll, err := u.repo.GetByID(id)
	if err != nil {
		return nil, translate(err)
	}
	return payroll, nil
}

func (u *PayrollUsecase) MarkPaid(id uint) (*model.Payroll, error) {
	payroll, err := u.repo.GetByID(id)
	if err != nil {
		return nil, translate(err)
	}
	if payroll.Status == model.PayrollPaid {
		return nil, ErrPayrollLocked
	}
	paidAt := u.now()
	payroll.Status = model.PayrollPaid
	payroll.PaidAt = &paidAt
	if err := u.repo.Save(payroll); err != nil {
		return nil, translate(err)
	}
	return payroll, nil
}

func (u *PayrollUsecase) Send(id uint) error {
	payroll, err := u.repo.GetByID(id)
	if err != nil {
		return translate(err)
	}
	if payroll.Employee.Email == "" {
		return invalid("employee %d has no email address", payroll.EmployeeID)
	}
	if err := u.sender.SendPayslip(payroll); err != nil {
		metrics.PayslipsSent.WithLabelValues("error").Inc()
		return err
	}
	metrics.PayslipsSent.WithLabelValues("ok").Inc()
	return nil
}

func (u *PayrollUsecase) Delete(id uint) error {
	payroll, err := u.repo.GetByID(id)
	if err != nil {
		return translate(err)
	}
	if payroll.Status == model.PayrollPaid {
		return ErrPayrollLocked
	}
	return translate(u.repo.Delete(id))
}
