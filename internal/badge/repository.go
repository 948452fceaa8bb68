package badge

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	CreateAll(badges []Badge) error
	FindByID(id string) (*Badge, error)
	FindAll() ([]Badge, error)
	Count() (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateAll(badges []Badge) error {
	if len(badges) == 0 {
		return nil
	}
	return r.db.Create(&badges).Error
}

func (r *repository) FindByID(id string) (*Badge, error) {
	var b Badge
	if err := r.db.First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *repository) FindAll() ([]Badge, error) {
	var badges []Badge
	if err := r.db.Order("id ASC").Find(&badges).Error; err != nil {
		return nil, err
	}
	return badges, nil
}

func (r *repository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&Badge{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
