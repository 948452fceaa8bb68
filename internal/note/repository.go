package note

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(n *Note) error
	FindByID(id uuid.UUID) (*Note, error)
	FindAllByAuthor(authorID uuid.UUID) ([]Note, error)
	Save(n *Note) error
	Delete(id uuid.UUID) error

	UpsertShared(shared *SharedNote) error
	ListShared(subject string) ([]SharedNote, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(n *Note) error {
	return r.db.Create(n).Error
}

func (r *repository) FindByID(id uuid.UUID) (*Note, error) {
	var n Note
	if err := r.db.First(&n, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

func (r *repository) FindAllByAuthor(authorID uuid.UUID) ([]Note, error) {
	var notes []Note
	if err := r.db.
		Where("author_id = ?", authorID).
		Order("updated_at DESC").
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *repository) Save(n *Note) error {
	return r.db.Save(n).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Note{}, "id = ?", id).Error
}

func (r *repository) UpsertShared(shared *SharedNote) error {
	return r.db.Save(shared).Error
}

func (r *repository) ListShared(subject string) ([]SharedNote, error) {
	var shared []SharedNote
	q := r.db.Order("published_at DESC")
	if subject != "" {
		q = q.Where("subject = ?", subject)
	}
	if err := q.Find(&shared).Error; err != nil {
		return nil, err
	}
	return shared, nil
}
