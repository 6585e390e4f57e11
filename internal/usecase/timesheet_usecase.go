package usecase

import (
	"errors"
	"strings"

	"hr-management-backend/internal/metrics"
	"hr-management-backend/internal/model"
	"hr-management-backend/internal/repository"
	"hr-management-backend/internal/workhours"
)

type TimesheetInput struct {
	EmployeeID uint   `json:"employee_id"`
	WorkDate   string `json:"work_date"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Note       string `json:"note"`
}

// HoursPreview is what the edit form shows while the user types.
type HoursPreview struct {
	WorkingHours float64 `json:"working_hours"`
	Valid        bool    `json:"valid"`
	Message      string  `json:"message,omitempty"`
}

type TimesheetUsecase struct {
	repo         repository.TimesheetRepository
	employeeRepo repository.EmployeeRepository
}

func NewTimesheetUsecase(repo repository.TimesheetRepository, employeeRepo repository.EmployeeRepository) *TimesheetUsecase {
	return &TimesheetUsecase{repo: repo, employeeRepo: employeeRepo}
}

// Preview never fails; an unusable triple yields zero hours and a message.
func (u *TimesheetUsecase) Preview(date, checkIn, checkOut string) HoursPreview {
	hours, err := workhours.Calculate(date, checkIn, checkOut)
	if err != nil {
		return HoursPreview{Message: err.Error()}
	}
	return HoursPreview{WorkingHours: hours, Valid: true}
}

func (u *TimesheetUsecase) List(filter repository.TimesheetFilter) ([]model.Timesheet, error) {
	if filter.Month != "" || filter.Year != "" {
		month, year, err := NormalizePeriod(filter.Month, filter.Year)
		if err != nil {
			return nil, err
		}
		filter.Month, filter.Year = month, year
	}
	return u.repo.GetAll(filter)
}

func (u *TimesheetUsecase) Get(id uint) (*model.Timesheet, error) {
	ts, err := u.repo.GetByID(id)
	if err != nil {
		return nil, translate(err)
	}
	return ts, nil
}

func (u *TimesheetUsecase) Create(input TimesheetInput) (*model.Timesheet, error) {
	ts := &model.Timesheet{}
	if err := u.apply(ts, input); err != nil {
		return nil, err
	}

	if _, err := u.repo.GetByEmployeeAndDate(ts.EmployeeID, ts.WorkDate); err == nil {
		return nil, ErrConflict
	} else if !errors.Is(translate(err), ErrNotFound) {
		return nil, err
	}

	if err := u.repo.Create(ts); err != nil {
		return nil, translate(err)
	}
	metrics.TimesheetHours.Observe(ts.WorkingHours)
	return ts, nil
}

func (u *TimesheetUsecase) Update(id uint, input TimesheetInput) (*model.Timesheet, error) {
	ts, err := u.repo.GetByID(id)
	if err != nil {
		return nil, translate(err)
	}
	if input.EmployeeID == 0 {
		input.EmployeeID = ts.EmployeeID
	}
	if input.WorkDate == "" {
		input.WorkDate = ts.WorkDate
	}
	if err := u.apply(ts, input); err != nil {
		return nil, err
	}

	existing, err := u.repo.GetByEmployeeAndDate(ts.EmployeeID, ts.WorkDate)
	if err == nil && existing.ID != ts.ID {
		return nil, ErrConflict
	} else if err != nil && !errors.Is(translate(err), ErrNotFound) {
		return nil, err
	}

	if err := u.repo.Update(ts); err != nil {
		return nil, translate(err)
	}
	metrics.TimesheetHours.Observe(ts.WorkingHours)
	return ts, nil
}

func (u *TimesheetUsecase) Delete(id uint) error {
	return translate(u.repo.Delete(id))
}

// apply validates input and copies it onto ts with freshly derived hours.
func (u *TimesheetUsecase) apply(ts *model.Timesheet, input TimesheetInput) error {
	if input.EmployeeID == 0 {
		return invalid("employee_id is required")
	}
	if _, err := u.employeeRepo.GetByID(input.EmployeeID); err != nil {
		if errors.Is(translate(err), ErrNotFound) {
			return invalid("employee %d does not exist", input.EmployeeID)
		}
		return err
	}

	date := strings.TrimSpace(input.WorkDate)
	checkIn := strings.TrimSpace(input.CheckIn)
	checkOut := strings.TrimSpace(input.CheckOut)

	hours, err := workhours.Calculate(date, checkIn, checkOut)
	if err != nil {
		metrics.TimesheetRejected.WithLabelValues(rejectReason(err)).Inc()
		return invalid("%s", err.Error())
	}

	ts.EmployeeID = input.EmployeeID
	ts.WorkDate = date
	ts.CheckIn = checkIn
	ts.CheckOut = checkOut
	ts.WorkingHours = hours
	ts.Note = input.Note
	return nil
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, workhours.ErrMissingTime):
		return "missing_time"
	case errors.Is(err, workhours.ErrInvalidDate):
		return "invalid_date"
	case errors.Is(err, workhours.ErrInvalidTime):
		return "invalid_time"
	case errors.Is(err, workhours.ErrCheckOutNotAfterCheckIn):
		return "not_after"
	}
	return "other"
}
