package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"hr-management-backend/internal/model"
	"hr-management-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	out := map[string]interface{}{}
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatalf("decode %s: %v", raw, err)
		}
	}
	return resp.StatusCode, out
}

type stubEmployeeRepo struct {
	employees []model.Employee
}

func (s *stubEmployeeRepo) GetAll(repository.EmployeeFilter) ([]model.Employee, error) {
	return s.employees, nil
}

func (s *stubEmployeeRepo) GetByID(id uint) (*model.Employee, error) {
	for _, e := range s.employees {
		if e.ID == id {
			found := e
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubEmployeeRepo) GetByIDs([]uint) ([]model.Employee, error) { return s.employees, nil }
func (s *stubEmployeeRepo) Create(e *model.Employee) error {
	if e.Code == "DUP" {
		return gorm.ErrDuplicatedKey
	}
	e.ID = 99
	s.employees = append(s.employees, *e)
	return nil
}
func (s *stubEmployeeRepo) Update(*model.Employee) error         { return nil }
func (s *stubEmployeeRepo) Delete(uint) error                    { return gorm.ErrRecordNotFound }
func (s *stubEmployeeRepo) CountByStatus(string) (int64, error) { return int64(len(s.employees)), nil }

type stubTimesheetRepo struct {
	sheets []model.Timesheet
}

func (s *stubTimesheetRepo) GetAll(repository.TimesheetFilter) ([]model.Timesheet, error) {
	return s.sheets, nil
}

func (s *stubTimesheetRepo) GetByID(id uint) (*model.Timesheet, error) {
	for _, ts := range s.sheets {
		if ts.ID == id {
			found := ts
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubTimesheetRepo) GetByEmployeeAndDate(employeeID uint, date string) (*model.Timesheet, error) {
	for _, ts := range s.sheets {
		if ts.EmployeeID == employeeID && ts.WorkDate == date {
			found := ts
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubTimesheetRepo) GetByMonth(month, year string) ([]model.Timesheet, error) {
	var out []model.Timesheet
	for _, ts := range s.sheets {
		if strings.HasPrefix(ts.WorkDate, year+"-"+month) {
			out = append(out, ts)
		}
	}
	return out, nil
}

func (s *stubTimesheetRepo) Create(ts *model.Timesheet) error {
	ts.ID = uint(len(s.sheets) + 1)
	s.sheets = append(s.sheets, *ts)
	return nil
}

func (s *stubTimesheetRepo) Update(ts *model.Timesheet) error {
	for i := range s.sheets {
		if s.sheets[i].ID == ts.ID {
			s.sheets[i] = *ts
		}
	}
	return nil
}

func (s *stubTimesheetRepo) Delete(uint) error                 { return nil }
func (s *stubTimesheetRepo) CountByDate(string) (int64, error) { return 0, nil }

type stubDepartmentRepo struct {
	list  []model.Department
	loads int
}

func (s *stubDepartmentRepo) GetAll(string) ([]model.Department, error) {
	s.loads++
	return s.list, nil
}

func (s *stubDepartmentRepo) GetByID(id uint) (*model.Department, error) {
	for _, d := range s.list {
		if d.ID == id {
			found := d
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubDepartmentRepo) Create(d *model.Department) error {
	d.ID = uint(len(s.list) + 1)
	s.list = append(s.list, *d)
	return nil
}

func (s *stubDepartmentRepo) Update(*model.Department) error { return nil }
func (s *stubDepartmentRepo) Delete(uint) error              { return nil }

// memCache is an in-process Cache that round-trips values through JSON like
// the redis implementation does.
type memCache struct {
	data    map[string][]byte
	pingErr error
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (m *memCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	b, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dest)
}

func (m *memCache) Set(_ context.Context, key string, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = b
	return nil
}

func (m *memCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memCache) Ping(context.Context) error { return m.pingErr }


type stubDashboardRepo struct {
	stats *repository.DashboardStats
	err   error
	args  []string
}

func (s *stubDashboardRepo) GetDashboardStats(date, month, year string) (*repository.DashboardStats, error) {
	s.args = []string{date, month, year}
	return s.stats, s.err
}
