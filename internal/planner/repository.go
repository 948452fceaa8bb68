package planner

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(e *Event) error
	FindByID(id uuid.UUID) (*Event, error)
	FindAllByUser(userID uuid.UUID) ([]*Event, error)
	FindByUserInRange(userID uuid.UUID, from, to time.Time) ([]*Event, error)
	FindRecentByUser(userID uuid.UUID, limit int) ([]*Event, error)
	Save(e *Event) error
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(e *Event) error {
	return r.db.Create(e).Error
}

func (r *repository) FindByID(id uuid.UUID) (*Event, error) {
	var e Event
	if err := r.db.First(&e, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindAllByUser(userID uuid.UUID) ([]*Event, error) {
	var events []*Event
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *repository) FindByUserInRange(userID uuid.UUID, from, to time.Time) ([]*Event, error) {
	var events []*Event
	if err := r.db.
		Where("user_id = ? AND due_date >= ? AND due_date < ?", userID, from, to).
		Order("due_date ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *repository) FindRecentByUser(userID uuid.UUID, limit int) ([]*Event, error) {
	var events []*Event
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *repository) Save(e *Event) error {
	return r.db.Save(e).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Event{}, "id = ?", id).Error
}
