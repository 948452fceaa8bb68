package quiz

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(q *Quiz) error
	GetByID(id string) (*Quiz, error)
	Delete(id string) error
	ListByAuthor(authorID string) ([]*Quiz, error)

	AddQuestions(questions []*QuizQuestion) error
	ListQuestionsByQuiz(quizID string) ([]*QuizQuestion, error)
	DeleteQuestion(id string) error

	UpsertShared(shared *SharedQuiz) error
	GetShared(quizID string) (*SharedQuiz, error)
	SaveShared(shared *SharedQuiz) error
	ListShared(subject string) ([]*SharedQuiz, error)

	CreateAttempt(attempt *QuizAttempt) error
	ListAttemptsByUser(userID uuid.UUID) ([]*QuizAttempt, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(q *Quiz) error {
	return r.db.Create(q).Error
}

func (r *quizRepository) GetByID(id string) (*Quiz, error) {
	var quiz Quiz
	if err := r.db.Preload("Questions").First(&quiz, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) Delete(id string) error {
	return r.db.Delete(&Quiz{}, "id = ?", id).Error
}

func (r *quizRepository) ListByAuthor(authorID string) ([]*Quiz, error) {
	var quizzes []*Quiz
	if err := r.db.
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) AddQuestions(questions []*QuizQuestion) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.Create(&questions).Error
}

func (r *quizRepository) ListQuestionsByQuiz(quizID string) ([]*QuizQuestion, error) {
	var questions []*QuizQuestion
	if err := r.db.
		Where("quiz_id = ?", quizID).
		Order("order_index ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *quizRepository) DeleteQuestion(id string) error {
	return r.db.Delete(&QuizQuestion{}, "id = ?", id).Error
}

func (r *quizRepository) UpsertShared(shared *SharedQuiz) error {
	return r.db.Save(shared).Error
}

func (r *quizRepository) GetShared(quizID string) (*SharedQuiz, error) {
	var shared SharedQuiz
	if err := r.db.First(&shared, "quiz_id = ?", quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shared, nil
}

func (r *quizRepository) SaveShared(shared *SharedQuiz) error {
	return r.db.Save(shared).Error
}

func (r *quizRepository) ListShared(subject string) ([]*SharedQuiz, error) {
	var shared []*SharedQuiz
	q := r.db.Order("published_at DESC")
	if subject != "" {
		q = q.Where("subject = ?", subject)
	}
	if err := q.Find(&shared).Error; err != nil {
		return nil, err
	}
	return shared, nil
}

func (r *quizRepository) CreateAttempt(attempt *QuizAttempt) error {
	return r.db.Create(attempt).Error
}

func (r *quizRepository) ListAttemptsByUser(userID uuid.UUID) ([]*QuizAttempt, error) {
	var attempts []*QuizAttempt
	if err := r.db.
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}
