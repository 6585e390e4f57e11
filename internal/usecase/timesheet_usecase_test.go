package usecase

import (
	"errors"
	"strings"
	"testing"

	"hr-management-backend/internal/model"
)

func newTimesheetFixture(existing ...model.Timesheet) (*TimesheetUsecase, *fakeTimesheetRepo) {
	employees := newFakeEmployeeRepo(
		model.Employee{Model: withID(1), Code: "E001", FullName: "Nguyen Van A", Status: model.EmployeeActive},
		model.Employee{Model: withID(2), Code: "E002", FullName: "Tran Thi B", Status: model.EmployeeActive},
	)
	sheets := newFakeTimesheetRepo(existing...)
	return NewTimesheetUsecase(sheets, employees), sheets
}

func TestTimesheetUsecase_Preview(t *testing.T) {
	uc, _ := newTimesheetFixture()

	tests := []struct {
		name      string
		checkIn   string
		checkOut  string
		wantHours float64
		wantValid bool
	}{
		{name: "full day", checkIn: "08:00", checkOut: "17:00", wantHours: 9, wantValid: true},
		{name: "quarter hours", checkIn: "08:30", checkOut: "17:15", wantHours: 8.75, wantValid: true},
		{name: "check-out empty", checkIn: "08:00", checkOut: ""},
		{name: "overnight", checkIn: "18:00", checkOut: "08:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := uc.Preview("2025-02-01", tt.checkIn, tt.checkOut)
			if got.WorkingHours != tt.wantHours || got.Valid != tt.wantValid {
				t.Fatalf("Preview = %+v", got)
			}
			if !got.Valid && got.Message == "" {
				t.Fatal("expected a message for an invalid preview")
			}
		})
	}
}

func TestTimesheetUsecase_CreateDerivesHours(t *testing.T) {
	uc, repo := newTimesheetFixture()

	ts, err := uc.Create(TimesheetInput{EmployeeID: 1, WorkDate: "2025-02-01", CheckIn: " 08:30", CheckOut: "17:15 "})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if ts.WorkingHours != 8.75 {
		t.Fatalf("expected 8.75 hours, got %v", ts.WorkingHours)
	}
	if ts.CheckIn != "08:30" || ts.CheckOut != "17:15" {
		t.Fatalf("times not trimmed: %+v", ts)
	}
	if repo.created != 1 {
		t.Fatalf("expected one insert, got %d", repo.created)
	}
}

func TestTimesheetUsecase_CreateRejects(t *testing.T) {
	existing := model.Timesheet{Model: withID(9), EmployeeID: 1, WorkDate: "2025-02-01", CheckIn: "08:00", CheckOut: "17:00", WorkingHours: 9}

	tests := []struct {
		name    string
		input   TimesheetInput
		wantErr error
		wantMsg string
	}{
		{
			name:    "check-out before check-in",
			input:   TimesheetInput{EmployeeID: 2, WorkDate: "2025-02-01", CheckIn: "18:00", CheckOut: "08:00"},
			wantErr: ErrInvalidInput,
			wantMsg: "check-out must be later than check-in",
		},
		{
			name:    "equal times",
			input:   TimesheetInput{EmployeeID: 2, WorkDate: "2025-02-01", CheckIn: "08:00", CheckOut: "08:00"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing check-in",
			input:   TimesheetInput{EmployeeID: 2, WorkDate: "2025-02-01", CheckOut: "17:00"},
			wantErr: ErrInvalidInput,
			wantMsg: "required",
		},
		{
			name:    "bad date",
			input:   TimesheetInput{EmployeeID: 2, WorkDate: "01/02/2025", CheckIn: "08:00", CheckOut: "17:00"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown employee",
			input:   TimesheetInput{EmployeeID: 42, WorkDate: "2025-02-01", CheckIn: "08:00", CheckOut: "17:00"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "duplicate day",
			input:   TimesheetInput{EmployeeID: 1, WorkDate: "2025-02-01", CheckIn: "09:00", CheckOut: "17:00"},
			wantErr: ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo := newTimesheetFixture(existing)
			_, err := uc.Create(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("expected message containing %q, got %q", tt.wantMsg, err.Error())
			}
			if repo.created != 0 {
				t.Fatal("nothing should be written")
			}
		})
	}
}

func TestTimesheetUsecase_UpdateRecomputes(t *testing.T) {
	uc, repo := newTimesheetFixture(
		model.Timesheet{Model: withID(9), EmployeeID: 1, WorkDate: "2025-02-01", CheckIn: "08:00", CheckOut: "17:00", WorkingHours: 9},
		model.Timesheet{Model: withID(10), EmployeeID: 1, WorkDate: "2025-02-02", CheckIn: "08:00", CheckOut: "12:00", WorkingHours: 4},
	)

	ts, err := uc.Update(9, TimesheetInput{CheckIn: "08:30", CheckOut: "17:15"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if ts.WorkingHours != 8.75 || repo.sheets[9].WorkingHours != 8.75 {
		t.Fatalf("hours not recomputed: %+v", repo.sheets[9])
	}

	if _, err := uc.Update(9, TimesheetInput{WorkDate: "2025-02-02", CheckIn: "08:00", CheckOut: "17:00"}); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict moving onto an existing day, got %v", err)
	}

	if _, err := uc.Update(9, TimesheetInput{CheckIn: "17:00", CheckOut: "08:00"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if repo.sheets[9].WorkingHours != 8.75 {
		t.Fatal("rejected update must not change the stored row")
	}

	if _, err := uc.Update(404, TimesheetInput{CheckIn: "08:00", CheckOut: "17:00"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTimesheetUsecase_RecreateAfterDelete(t *testing.T) {
	uc, repo := newTimesheetFixture(
		model.Timesheet{Model: withID(9), EmployeeID: 1, WorkDate: "2025-02-01", CheckIn: "08:00", CheckOut: "17:00", WorkingHours: 9},
	)

	if err := uc.Delete(9); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	ts, err := uc.Create(TimesheetInput{EmployeeID: 1, WorkDate: "2025-02-01", CheckIn: "09:00", CheckOut: "17:00"})
	if err != nil {
		t.Fatalf("create after delete: %v", err)
	}
	if ts.ID == 9 || ts.WorkingHours != 8 {
		t.Fatalf("unexpected timesheet: %+v", ts)
	}
	if err := uc.Delete(9); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting twice, got %v", err)
	}
	if len(repo.sheets) != 1 {
		t.Fatalf("expected one stored timesheet, got %d", len(repo.sheets))
	}
}

func TestNormalizePeriod(t *testing.T) {
	tests := []struct {
		month, year string
		wantMonth   string
		wantErr     bool
	}{
		{month: "2", year: "2025", wantMonth: "02"},
		{month: "12", year: "2024", wantMonth: "12"},
		{month: "13", year: "2025", wantErr: true},
		{month: "0", year: "2025", wantErr: true},
		{month: "02", year: "25", wantErr: true},
		{month: "x", year: "2025", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.month+"/"+tt.year, func(t *testing.T) {
			month, _, err := NormalizePeriod(tt.month, tt.year)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil || month != tt.wantMonth {
				t.Fatalf("got %q, %v", month, err)
			}
		})
	}
}
