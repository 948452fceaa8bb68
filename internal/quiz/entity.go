package quiz

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Quiz struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null;index" json:"author_id"`
	Title      string    `gorm:"type:text;not null" json:"title"`
	Subject    string    `gorm:"type:text;not null;index" json:"subject"`
	Grade      string    `gorm:"type:text" json:"grade,omitempty"`
	Difficulty string    `gorm:"type:text" json:"difficulty,omitempty"`
	IsPublic   bool      `gorm:"not null;default:false" json:"is_public"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	Questions []QuizQuestion `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

type QuizQuestion struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	QuizID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"quiz_id"`
	Content       string         `gorm:"type:text;not null" json:"content"`
	Options       datatypes.JSON `gorm:"type:jsonb;not null" json:"options"`
	CorrectAnswer string         `gorm:"type:text;not null" json:"correct_answer"`
	Explanation   *string        `gorm:"type:text" json:"explanation,omitempty"`
	OrderIndex    int            `gorm:"not null" json:"order_index"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

// SharedQuiz is the community-pool copy of a published quiz. Rating is a
// running mean over RatingCount votes; it stays 0 while the count is 0.
type SharedQuiz struct {
	QuizID      uuid.UUID      `gorm:"type:uuid;primaryKey" json:"quiz_id"`
	AuthorID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"author_id"`
	Title       string         `gorm:"type:text;not null" json:"title"`
	Subject     string         `gorm:"type:text;not null;index" json:"subject"`
	Grade       string         `gorm:"type:text" json:"grade,omitempty"`
	Difficulty  string         `gorm:"type:text" json:"difficulty,omitempty"`
	Questions   datatypes.JSON `gorm:"type:jsonb;not null" json:"questions"`
	Rating      float64        `gorm:"not null;default:0" json:"rating"`
	RatingCount int            `gorm:"not null;default:0" json:"rating_count"`
	PublishedAt time.Time      `gorm:"autoCreateTime" json:"published_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// QuizAttempt is an append-only history record. It keeps its own copy of
// the title and subject so it survives deletion of the source quiz.
type QuizAttempt struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	QuizID         *uuid.UUID `gorm:"type:uuid" json:"quiz_id,omitempty"`
	AssignmentID   *uuid.UUID `gorm:"type:uuid" json:"assignment_id,omitempty"`
	Title          string     `gorm:"type:text;not null" json:"title"`
	Subject        string     `gorm:"type:text" json:"subject"`
	Score          int        `gorm:"not null" json:"score"`
	TotalQuestions int        `gorm:"not null" json:"total_questions"`
	Accuracy       float64    `gorm:"not null" json:"accuracy"`
	Date           time.Time  `gorm:"autoCreateTime" json:"date"`
}
