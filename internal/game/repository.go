package game

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(g *CustomGame) error
	FindByID(id uuid.UUID) (*CustomGame, error)
	FindAllByAuthor(authorID uuid.UUID) ([]CustomGame, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(g *CustomGame) error {
	return r.db.Create(g).Error
}

func (r *repository) FindByID(id uuid.UUID) (*CustomGame, error) {
	var g CustomGame
	if err := r.db.First(&g, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

func (r *repository) FindAllByAuthor(authorID uuid.UUID) ([]CustomGame, error) {
	var games []CustomGame
	if err := r.db.
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}
