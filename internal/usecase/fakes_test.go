package usecase

import (
	"sort"

	"hr-management-backend/internal/model"
	"hr-management-backend/internal/repository"

	"gorm.io/gorm"
)

type fakeEmployeeRepo struct {
	employees map[uint]model.Employee
}

func newFakeEmployeeRepo(list ...model.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{employees: make(map[uint]model.Employee)}
	for _, e := range list {
		r.employees[e.ID] = e
	}
	return r
}

func (r *fakeEmployeeRepo) GetAll(repository.EmployeeFilter) ([]model.Employee, error) {
	return r.GetByIDs(nil)
}

func (r *fakeEmployeeRepo) GetByID(id uint) (*model.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &e, nil
}

func (r *fakeEmployeeRepo) GetByIDs(ids []uint) ([]model.Employee, error) {
	var out []model.Employee
	if len(ids) == 0 {
		for _, e := range r.employees {
			out = append(out, e)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
		return out, nil
	}
	for _, id := range ids {
		if e, ok := r.employees[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Create(e *model.Employee) error { r.employees[e.ID] = *e; return nil }
func (r *fakeEmployeeRepo) Update(e *model.Employee) error { r.employees[e.ID] = *e; return nil }
func (r *fakeEmployeeRepo) Delete(id uint) error           { delete(r.employees, id); return nil }
func (r *fakeEmployeeRepo) CountByStatus(string) (int64, error) {
	return int64(len(r.employees)), nil
}

type fakeTimesheetRepo struct {
	sheets  map[uint]model.Timesheet
	nextID  uint
	created int
}

func newFakeTimesheetRepo(list ...model.Timesheet) *fakeTimesheetRepo {
	r := &fakeTimesheetRepo{sheets: make(map[uint]model.Timesheet), nextID: 100}
	for _, ts := range list {
		r.sheets[ts.ID] = ts
	}
	return r
}

func (r *fakeTimesheetRepo) GetAll(repository.TimesheetFilter) ([]model.Timesheet, error) {
	var out []model.Timesheet
	for _, ts := range r.sheets {
		out = append(out, ts)
	}
	return out, nil
}

func (r *fakeTimesheetRepo) GetByID(id uint) (*model.Timesheet, error) {
	ts, ok := r.sheets[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &ts, nil
}

func (r *fakeTimesheetRepo) GetByEmployeeAndDate(employeeID uint, date string) (*model.Timesheet, error) {
	for _, ts := range r.sheets {
		if ts.EmployeeID == employeeID && ts.WorkDate == date {
			found := ts
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeTimesheetRepo) GetByMonth(month, year string) ([]model.Timesheet, error) {
	var out []model.Timesheet
	prefix := year + "-" + month
	for _, ts := range r.sheets {
		if len(ts.WorkDate) >= 7 && ts.WorkDate[:7] == prefix {
			out = append(out, ts)
		}
	}
	return out, nil
}

// Create enforces the (employee, work date) unique key like the database does.
func (r *fakeTimesheetRepo) Create(ts *model.Timesheet) error {
	for _, existing := range r.sheets {
		if existing.EmployeeID == ts.EmployeeID && existing.WorkDate == ts.WorkDate {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	ts.ID = r.nextID
	r.sheets[ts.ID] = *ts
	r.created++
	return nil
}

func (r *fakeTimesheetRepo) Update(ts *model.Timesheet) error {
	r.sheets[ts.ID] = *ts
	return nil
}

func (r *fakeTimesheetRepo) Delete(id uint) error {
	if _, ok := r.sheets[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.sheets, id)
	return nil
}

func (r *fakeTimesheetRepo) CountByDate(date string) (int64, error) {
	var n int64
	for _, ts := range r.sheets {
		if ts.WorkDate == date {
			n++
		}
	}
	return n, nil
}

type fakePayrollRepo struct {
	payrolls map[uint]model.Payroll
	nextID   uint
}

func newFakePayrollRepo(list ...model.Payroll) *fakePayrollRepo {
	r := &fakePayrollRepo{payrolls: make(map[uint]model.Payroll), nextID: 50}
	for _, p := range list {
		r.payrolls[p.ID] = p
	}
	return r
}

func (r *fakePayrollRepo) GetAll(month, year string, employeeID uint) ([]model.Payroll, error) {
	var out []model.Payroll
	for _, p := range r.payrolls {
		if (month == "" || p.Month == month) && (year == "" || p.Year == year) && (employeeID == 0 || p.EmployeeID == employeeID) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePayrollRepo) GetByID(id uint) (*model.Payroll, error) {
	p, ok := r.payrolls[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *fakePayrollRepo) GetByPeriod(employeeID uint, month, year string) (*model.Payroll, error) {
	for _, p := range r.payrolls {
		if p.EmployeeID == employeeID && p.Month == month && p.Year == year {
			found := p
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// Save enforces the (employee, month, year) unique key on insert.
func (r *fakePayrollRepo) Save(p *model.Payroll) error {
	if p.ID == 0 {
		for _, existing := range r.payrolls {
			if existing.EmployeeID == p.EmployeeID && existing.Month == p.Month && existing.Year == p.Year {
				return gorm.ErrDuplicatedKey
			}
		}
		r.nextID++
		p.ID = r.nextID
	}
	r.payrolls[p.ID] = *p
	return nil
}

func (r *fakePayrollRepo) Delete(id uint) error {
	if _, ok := r.payrolls[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.payrolls, id)
	return nil
}

type fakeRewardRepo struct {
	records []model.RewardDiscipline
}

func (r *fakeRewardRepo) GetAll(repository.RewardFilter) ([]model.RewardDiscipline, error) {
	return r.records, nil
}

func (r *fakeRewardRepo) GetByID(id uint) (*model.RewardDiscipline, error) {
	for _, rec := range r.records {
		if rec.ID == id {
			found := rec
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRewardRepo) GetByMonth(month, year string) ([]model.RewardDiscipline, error) {
	var out []model.RewardDiscipline
	prefix := year + "-" + month
	for _, rec := range r.records {
		if len(rec.Date) >= 7 && rec.Date[:7] == prefix {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeRewardRepo) Create(rec *model.RewardDiscipline) error {
	r.records = append(r.records, *rec)
	return nil
}
func (r *fakeRewardRepo) Update(*model.RewardDiscipline) error { return nil }
func (r *fakeRewardRepo) Delete(uint) error                    { return nil }

type fakeUserRepo struct {
	users  map[string]model.User
	nextID uint
}

func newFakeUserRepo(list ...model.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]model.User)}
	for _, u := range list {
		r.users[u.Username] = u
	}
	return r
}

func (r *fakeUserRepo) GetAll(string) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) GetByID(id uint) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByUsername(username string) (*model.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) Create(u *model.User) error {
	if _, ok := r.users[u.Username]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.nextID++
	u.ID = r.nextID
	r.users[u.Username] = *u
	return nil
}

func (r *fakeUserRepo) Update(u *model.User) error {
	r.users[u.Username] = *u
	return nil
}

func (r *fakeUserRepo) Delete(uint) error { return nil }

type fakeRoleRepo struct {
	roles []model.Role
}

func (r *fakeRoleRepo) GetAll() ([]model.Role, error) { return r.roles, nil }

func (r *fakeRoleRepo) GetByID(id uint) (*model.Role, error) {
	for _, role := range r.roles {
		if role.ID == id {
			found := role
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRoleRepo) GetByName(name string) (*model.Role, error) {
	for _, role := range r.roles {
		if role.Name == name {
			found := role
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRoleRepo) Create(*model.Role, []uint) error               { return nil }
func (r *fakeRoleRepo) Update(*model.Role, []uint) error               { return nil }
func (r *fakeRoleRepo) GetAllPermissions() ([]model.Permission, error) { return nil, nil }

type fakeContractRepo struct {
	contracts map[uint]model.Contract
}

func (r *fakeContractRepo) GetAll(uint, string) ([]model.Contract, error) { return nil, nil }

func (r *fakeContractRepo) GetByID(id uint) (*model.Contract, error) {
	c, ok := r.contracts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (r *fakeContractRepo) Create(c *model.Contract) error {
	c.ID = uint(len(r.contracts) + 1)
	r.contracts[c.ID] = *c
	return nil
}

func (r *fakeContractRepo) Update(c *model.Contract) error {
	r.contracts[c.ID] = *c
	return nil
}

func (r *fakeContractRepo) Delete(id uint) error {
	delete(r.contracts, id)
	return nil
}

type fakeSender struct {
	sent []uint
	err  error
}

func (s *fakeSender) SendPayslip(p *model.Payroll) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, p.ID)
	return nil
}

func withID(id uint) gorm.Model { return gorm.Model{ID: id} }
