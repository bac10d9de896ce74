package repositories

import (
	"supply-chain-app/models"

	"gorm.io/gorm"
)

type ReorderLogRepository struct {
	DB *gorm.DB
}

func NewReorderLogRepository(DB *gorm.DB) *ReorderLogRepository {
	return &ReorderLogRepository{DB: DB}
}

func (r *ReorderLogRepository) Create(log *models.ReorderLog) error {
	return r.DB.Create(log).Error
}

func (r *ReorderLogRepository) GetAll() ([]models.ReorderLog, error) {
	logs := []models.ReorderLog{}
	err := r.DB.Order("id").Find(&logs).Error
	return logs, err
}
