package progress

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(p *Progress) error
	FindByUserID(userID uuid.UUID) (*Progress, error)
	Save(p *Progress) error
	ExpireStaleStreaks(cutoff time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(p *Progress) error {
	return r.db.Create(p).Error
}

func (r *repository) FindByUserID(userID uuid.UUID) (*Progress, error) {
	var p Progress
	if err := r.db.First(&p, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) Save(p *Progress) error {
	return r.db.Save(p).Error
}

// ExpireStaleStreaks zeroes the current streak for users whose last login
// predates the cutoff. StreakBest is untouched.
func (r *repository) ExpireStaleStreaks(cutoff time.Time) (int64, error) {
	result := r.db.Model(&Progress{}).
		Where("last_login_date < ? AND streak_current > 0", cutoff).
		Update("streak_current", 0)
	return result.RowsAffected, result.Error
}
