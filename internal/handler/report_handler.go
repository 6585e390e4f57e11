package handler

import (
	"math"
	"strconv"
	"time"

	"hr-management-backend/internal/repository"
	"hr-management-backend/internal/usecase"
	"hr-management-backend/internal/workhours"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	employeeRepo  repository.EmployeeRepository
	timesheetRepo repository.TimesheetRepository
}

func NewReportHandler(employeeRepo repository.EmployeeRepository, timesheetRepo repository.TimesheetRepository) *ReportHandler {
	return &ReportHandler{employeeRepo: employeeRepo, timesheetRepo: timesheetRepo}
}

// GetMonthlyRecap lists every employee with the hours worked on each day of
// the month, keyed "01".."31".
func (h *ReportHandler) GetMonthlyRecap(c *fiber.Ctx) error {
	month, year, err := usecase.NormalizePeriod(c.Query("month"), c.Query("year"))
	if err != nil {
		return respondError(c, err, "build monthly report")
	}

	employees, err := h.employeeRepo.GetAll(repository.EmployeeFilter{DepartmentID: queryUint(c, "department_id")})
	if err != nil {
		return respondError(c, err, "fetch employees")
	}
	sheets, err := h.timesheetRepo.GetByMonth(month, year)
	if err != nil {
		return respondError(c, err, "fetch timesheets")
	}

	// hours[employeeID][day] = derived hours
	hours := make(map[uint]map[string]float64)
	for _, ts := range sheets {
		if len(ts.WorkDate) != len(workhours.DateLayout) {
			continue
		}
		if _, ok := hours[ts.EmployeeID]; !ok {
			hours[ts.EmployeeID] = make(map[string]float64)
		}
		hours[ts.EmployeeID][ts.WorkDate[len(ts.WorkDate)-2:]] = workhours.ComputeHours(ts.WorkDate, ts.CheckIn, ts.CheckOut)
	}

	daysInMonth := getDaysInMonth(month, year)
	reportData := []fiber.Map{}
	var grandTotal float64

	for _, emp := range employees {
		daily := make(map[string]float64, daysInMonth)
		daysWorked := 0
		var total float64

		for d := 1; d <= daysInMonth; d++ {
			dayKey := twoDigits(d)
			worked := hours[emp.ID][dayKey]
			daily[dayKey] = worked
			if worked > 0 {
				daysWorked++
				total += worked
			}
		}
		total = math.Round(total*100) / 100
		grandTotal += total

		row := fiber.Map{
			"employee_id": emp.ID,
			"code":        emp.Code,
			"full_name":   emp.FullName,
			"daily":       daily,
			"days_worked": daysWorked,
			"total_hours": total,
		}
		if emp.Department != nil {
			row["department"] = emp.Department.Name
		}
		reportData = append(reportData, row)
	}

	return c.JSON(fiber.Map{
		"month":       month,
		"year":        year,
		"period":      monthName(month) + " " + year,
		"days_count":  daysInMonth,
		"total_hours": math.Round(grandTotal*100) / 100,
		"data":        reportData,
	})
}

func getDaysInMonth(monthStr, yearStr string) int {
	year, _ := strconv.Atoi(yearStr)
	month, _ := strconv.Atoi(monthStr)
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func twoDigits(d int) string {
	if d < 10 {
		return "0" + strconv.Itoa(d)
	}
	return strconv.Itoa(d)
}

func monthName(m string) string {
	n, _ := strconv.Atoi(m)
	return time.Month(n).String()
}
