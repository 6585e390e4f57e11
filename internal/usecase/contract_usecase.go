package usecase

import (
	"errors"
	"strings"
	"time"

	"hr-management-backend/internal/model"
	"hr-management-backend/internal/repository"
	"hr-management-backend/internal/workhours"
)

type ContractInput struct {
	ContractNumber string `json:"contract_number"`
	EmployeeID     uint   `json:"employee_id"`
	Type           string `json:"type"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	SalaryGradeID  *uint  `json:"salary_grade_id"`
	Status         string `json:"status"`
	Note           string `json:"note"`
}

type ContractUsecase struct {
	repo         repository.ContractRepository
	employeeRepo repository.EmployeeRepository
}

func NewContractUsecase(repo repository.ContractRepository, employeeRepo repository.EmployeeRepository) *ContractUsecase {
	return &ContractUsecase{repo: repo, employeeRepo: employeeRepo}
}

func (u *ContractUsecase) List(employeeID uint, search string) ([]model.Contract, error) {
	return u.repo.GetAll(employeeID, search)
}

func (u *ContractUsecase) Get(id uint) (*model.Contract, error) {
	contract, err := u.repo.GetByID(id)
	if err != nil {
		return nil, translate(err)
	}
	return contract, nil
}

func (u *ContractUsecase) Create(input ContractInput) (*model.Contract, error) {
	contract := &model.Contract{}
	if err := u.apply(contract, input); err != nil {
		return nil, err
	}
	if err := u.repo.Create(contract); err != nil {
		return nil, translate(err)
	}
	return contract, nil
}

func (u *ContractUsecase) Update(id uint, input ContractInput) (*model.Contract, error) {
	contract, err := u.repo.GetByID(id)
	if err != nil {
		return nil, translate(err)
	}
	if err := u.apply(contract, input); err != nil {
		return nil, err
	}
	if err := u.repo.Update(contract); err != nil {
		return nil, translate(err)
	}
	return contract, nil
}

func (u *ContractUsecase) Delete(id uint) error {
	return translate(u.repo.Delete(id))
}

func (u *ContractUsecase) apply(contract *model.Contract, input ContractInput) error {
	input.ContractNumber = strings.TrimSpace(input.ContractNumber)
	if input.ContractNumber == "" {
		return invalid("contract_number is required")
	}
	if input.EmployeeID == 0 {
		return invalid("employee_id is required")
	}
	if _, err := u.employeeRepo.GetByID(input.EmployeeID); err != nil {
		if errors.Is(translate(err), ErrNotFound) {
			return invalid("employee %d does not exist", input.EmployeeID)
		}
		return err
	}

	switch input.Type {
	case model.ContractProbation, model.ContractFixedTerm, model.ContractIndefinite:
	default:
		return invalid("type must be PROBATION, FIXED_TERM or INDEFINITE")
	}

	if input.Status == "" {
		input.Status = model.ContractActive
	}
	switch input.Status {
	case model.ContractActive, model.ContractExpired, model.ContractTerminated:
	default:
		return invalid("status must be ACTIVE, EXPIRED or TERMINATED")
	}

	start, err := time.Parse(workhours.DateLayout, input.StartDate)
	if err != nil {
		return invalid("start_date must be YYYY-MM-DD")
	}
	if input.EndDate == "" {
		if input.Type != model.ContractIndefinite {
			return invalid("end_date is required for %s contracts", input.Type)
		}
	} else {
		end, err := time.Parse(workhours.DateLayout, input.EndDate)
		if err != nil {
			return invalid("end_date must be YYYY-MM-DD")
		}
		if !end.After(start) {
			return invalid("end_date must be after start_date")
		}
	}

	contract.ContractNumber = input.ContractNumber
	contract.EmployeeID = input.EmployeeID
	contract.Type = input.Type
	contract.StartDate = input.StartDate
	contract.EndDate = input.EndDate
	contract.SalaryGradeID = input.SalaryGradeID
	contract.Status = input.Status
	contract.Note = input.Note
	return nil
}
