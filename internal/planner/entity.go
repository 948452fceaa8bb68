package planner

import (
	"time"

	"github.com/google/uuid"
	util "github.com/studyhive/studyhive-lambda/internal/utils"
)

type Event struct {
	ID          uuid.UUID           `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID      uuid.UUID           `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string              `gorm:"type:text;not null" json:"title"`
	Description string              `gorm:"type:text" json:"description,omitempty"`
	Subject     string              `gorm:"type:text;index" json:"subject,omitempty"`
	Status      EventStatus         `gorm:"type:text;not null" json:"status"`
	StartDate   *util.LocalDateTime `json:"start_date,omitempty"`
	DueDate     *util.LocalDateTime `json:"due_date,omitempty"`
	AllDay      bool                `gorm:"not null;default:false" json:"all_day"`
	CreatedAt   time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time           `gorm:"autoUpdateTime" json:"updated_at"`
}
