package repository

import (
	"hr-management-backend/internal/model"

	"gorm.io/gorm"
)

type DepartmentRepository interface {
	GetAll(search string) ([]model.Department, error)
	GetByID(id uint) (*model.Department, error)
	Create(dept *model.Department) error
	Update(dept *model.Department) error
	Delete(id uint) error
}

type departmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db}
}

func (r *departmentRepository) GetAll(search string) ([]model.Department, error) {
	var list []model.Department
	err := searchCodeName(r.db, search).Order("name asc").Find(&list).Error
	return list, err
}

func (r *departmentRepository) GetByID(id uint) (*model.Department, error) {
	var dept model.Department
	err := r.db.First(&dept, id).Error
	return &dept, err
}

func (r *departmentRepository) Create(dept *model.Department) error {
	return r.db.Create(dept).Error
}

func (r *departmentRepository) Update(dept *model.Department) error {
	return r.db.Save(dept).Error
}

func (r *departmentRepository) Delete(id uint) error {
	return deleteByID(r.db, &model.Department{}, id)
}

type PositionRepository interface {
	GetAll(search string) ([]model.Position, error)
	GetByID(id uint) (*model.Position, error)
	Create(pos *model.Position) error
	Update(pos *model.Position) error
	Delete(id uint) error
}

type positionRepository struct {
	db *gorm.DB
}

func NewPositionRepository(db *gorm.DB) PositionRepository {
	return &positionRepository{db}
}

func (r *positionRepository) GetAll(search string) ([]model.Position, error) {
	var list []model.Position
	err := searchCodeName(r.db, search).Order("name asc").Find(&list).Error
	return list, err
}

func (r *positionRepository) GetByID(id uint) (*model.Position, error) {
	var pos model.Position
	err := r.db.First(&pos, id).Error
	return &pos, err
}

func (r *positionRepository) Create(pos *model.Position) error {
	return r.db.Create(pos).Error
}

func (r *positionRepository) Update(pos *model.Position) error {
	return r.db.Save(pos).Error
}

func (r *positionRepository) Delete(id uint) error {
	return deleteByID(r.db, &model.Position{}, id)
}

type SalaryGradeRepository interface {
	GetAll(search string) ([]model.SalaryGrade, error)
	GetByID(id uint) (*model.SalaryGrade, error)
	Create(grade *model.SalaryGrade) error
	Update(grade *model.SalaryGrade) error
	Delete(id uint) error
}

type salaryGradeRepository struct {
	db *gorm.DB
}

func NewSalaryGradeRepository(db *gorm.DB) SalaryGradeRepository {
	return &salaryGradeRepository{db}
}

func (r *salaryGradeRepository) GetAll(search string) ([]model.SalaryGrade, error) {
	var list []model.SalaryGrade
	err := searchCodeName(r.db, search).Order("code asc").Find(&list).Error
	return list, err
}

func (r *salaryGradeRepository) GetByID(id uint) (*model.SalaryGrade, error) {
	var grade model.SalaryGrade
	err := r.db.First(&grade, id).Error
	return &grade, err
}

func (r *salaryGradeRepository) Create(grade *model.SalaryGrade) error {
	return r.db.Create(grade).Error
}

func (r *salaryGradeRepository) Update(grade *model.SalaryGrade) error {
	return r.db.Save(grade).Error
}

func (r *salaryGradeRepository) Delete(id uint) error {
	return deleteByID(r.db, &model.SalaryGrade{}, id)
}
