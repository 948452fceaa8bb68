package prefs

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	FindByUserID(userID uuid.UUID) (*Preferences, error)
	Upsert(p *Preferences) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByUserID(userID uuid.UUID) (*Preferences, error) {
	var p Preferences
	if err := r.db.First(&p, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) Upsert(p *Preferences) error {
	return r.db.Save(p).Error
}
