package achievement

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	CreateDefinitions(defs []Achievement) error
	CreateDefinition(def *Achievement) error
	FindDefinition(key string) (*Achievement, error)
	ListDefinitions() ([]Achievement, error)
	CountDefinitions() (int64, error)

	FindUnlock(userID uuid.UUID, key string) (*UserAchievement, error)
	CreateUnlock(unlock *UserAchievement) error
	ListUnlocksByUser(userID uuid.UUID) ([]UserAchievement, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateDefinitions(defs []Achievement) error {
	if len(defs) == 0 {
		return nil
	}
	return r.db.Create(&defs).Error
}

func (r *repository) CreateDefinition(def *Achievement) error {
	return r.db.Create(def).Error
}

func (r *repository) FindDefinition(key string) (*Achievement, error) {
	var def Achievement
	if err := r.db.First(&def, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &def, nil
}

func (r *repository) ListDefinitions() ([]Achievement, error) {
	var defs []Achievement
	if err := r.db.Order("created_at ASC").Find(&defs).Error; err != nil {
		return nil, err
	}
	return defs, nil
}

func (r *repository) CountDefinitions() (int64, error) {
	var count int64
	if err := r.db.Model(&Achievement{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) FindUnlock(userID uuid.UUID, key string) (*UserAchievement, error) {
	var unlock UserAchievement
	if err := r.db.First(&unlock, "user_id = ? AND achievement_key = ?", userID, key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &unlock, nil
}

func (r *repository) CreateUnlock(unlock *UserAchievement) error {
	return r.db.Create(unlock).Error
}

func (r *repository) ListUnlocksByUser(userID uuid.UUID) ([]UserAchievement, error) {
	var unlocks []UserAchievement
	if err := r.db.Where("user_id = ?", userID).Find(&unlocks).Error; err != nil {
		return nil, err
	}
	return unlocks, nil
}
