package repository

import (
	"hr-management-backend/internal/model"

	"gorm.io/gorm"
)

type RewardFilter struct {
	EmployeeID uint
	Kind       string
	Search     string
}

type RewardRepository interface {
	GetAll(filter RewardFilter) ([]model.RewardDiscipline, error)
	GetByID(id uint) (*model.RewardDiscipline, error)
	GetByMonth(month, year string) ([]model.RewardDiscipline, error)
	Create(record *model.RewardDiscipline) error
	Update(record *model.RewardDiscipline) error
	Delete(id uint) error
}

type rewardRepository struct {
	db *gorm.DB
}

func NewRewardRepository(db *gorm.DB) RewardRepository {
	return &rewardRepository{db}
}

func (r *rewardRepository) GetAll(filter RewardFilter) ([]model.RewardDiscipline, error) {
	var list []model.RewardDiscipline
	query := r.db.Preload("Employee")

	if filter.EmployeeID != 0 {
		query = query.Where("reward_disciplines.employee_id = ?", filter.EmployeeID)
	}
	if filter.Kind != "" {
		query = query.Where("reward_disciplines.kind = ?", filter.Kind)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Joins("JOIN employees ON employees.id = reward_disciplines.employee_id").
			Where("employees.full_name LIKE ? OR reward_disciplines.reason LIKE ? OR reward_disciplines.decision_number LIKE ?", pattern, pattern, pattern)
	}

	err := query.Order("reward_disciplines.date desc").Find(&list).Error
	return list, err
}

func (r *rewardRepository) GetByID(id uint) (*model.RewardDiscipline, error) {
	var record model.RewardDiscipline
	err := r.db.Preload("Employee").First(&record, id).Error
	return &record, err
}

func (r *rewardRepository) GetByMonth(month, year string) ([]model.RewardDiscipline, error) {
	var list []model.RewardDiscipline
	err := r.db.Where("date LIKE ?", monthPattern(month, year)).Find(&list).Error
	return list, err
}

func (r *rewardRepository) Create(record *model.RewardDiscipline) error {
	return r.db.Omit("Employee").Create(record).Error
}

func (r *rewardRepository) Update(record *model.RewardDiscipline) error {
	return r.db.Omit("Employee").Save(record).Error
}

func (r *rewardRepository) Delete(id uint) error {
	return deleteByID(r.db, &model.RewardDiscipline{}, id)
}
