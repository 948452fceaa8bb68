package quiz

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/studyhive/studyhive-lambda/internal/config"
	"gorm.io/gorm"
)

var (
	ErrQuizNotFound   = errors.New("quiz not found")
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrInvalidAttempt = errors.New("attempt score must be between 0 and total questions")
)

type QuizService interface {
	CreateQuizWithQuestions(ctx context.Context, quiz *Quiz, questions []*QuizQuestion) error
	DeleteQuiz(ctx context.Context, quizID string) error
	AddQuestionToQuiz(ctx context.Context, quizID string, question *QuizQuestion) error
	RemoveQuestion(ctx context.Context, questionID string) error
	GetQuizWithQuestions(ctx context.Context, quizID string) (*QuizWithQuestionsDTO, error)
	ListQuizzesByAuthor(ctx context.Context, authorID string) ([]*Quiz, error)

	Publish(ctx context.Context, quizID string) (*SharedQuiz, error)
	Rate(ctx context.Context, quizID string, rating float64) (*SharedQuiz, error)
	ListCommunity(ctx context.Context, subject string) ([]*SharedQuiz, error)

	AddAttempt(ctx context.Context, attempt *QuizAttempt) error
	ListAttempts(ctx context.Context, userID uuid.UUID) ([]*QuizAttempt, error)
}

type quizService struct {
	repo QuizRepository
	db   *gorm.DB
}

func NewService(db *gorm.DB, repo QuizRepository) QuizService {
	return &quizService{
		repo: repo,
		db:   db,
	}
}

func (s *quizService) CreateQuizWithQuestions(ctx context.Context, quiz *Quiz, questions []*QuizQuestion) error {
	log := config.WithContext(ctx)

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(quiz).Error; err != nil {
			log.WithError(err).Error("Failed to create quiz")
			return err
		}

		for i := range questions {
			questions[i].QuizID = quiz.ID
		}

		if len(questions) > 0 {
			if err := tx.Create(&questions).Error; err != nil {
				log.WithError(err).Error("Failed to create quiz questions")
				return err
			}
		}

		log.Infof("Created quiz %s with %d questions", quiz.ID, len(questions))
		return nil
	})
}

// DeleteQuiz is a no-op success when the id does not exist. Attempt history
// referencing the quiz is kept.
func (s *quizService) DeleteQuiz(ctx context.Context, quizID string) error {
	log := config.WithContext(ctx)

	if err := s.repo.Delete(quizID); err != nil {
		log.WithError(err).Error("Failed to delete quiz")
		return err
	}
	return nil
}

func (s *quizService) AddQuestionToQuiz(ctx context.Context, quizID string, question *QuizQuestion) error {
	log := config.WithContext(ctx)

	qz, err := s.repo.GetByID(quizID)
	if err != nil {
		return err
	}
	if qz == nil {
		return ErrQuizNotFound
	}

	question.QuizID = qz.ID
	if question.ID == uuid.Nil {
		question.ID = uuid.New()
	}

	if err := s.repo.AddQuestions([]*QuizQuestion{question}); err != nil {
		log.WithError(err).Error("Failed to add question")
		return err
	}
	return nil
}

func (s *quizService) RemoveQuestion(ctx context.Context, questionID string) error {
	return s.repo.DeleteQuestion(questionID)
}

func (s *quizService) GetQuizWithQuestions(ctx context.Context, quizID string) (*QuizWithQuestionsDTO, error) {
	quiz, err := s.repo.GetByID(quizID)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, nil
	}

	questions, err := s.repo.ListQuestionsByQuiz(quizID)
	if err != nil {
		return nil, err
	}

	return &QuizWithQuestionsDTO{
		Quiz:      quiz,
		Questions: questions,
	}, nil
}

func (s *quizService) ListQuizzesByAuthor(ctx context.Context, authorID string) ([]*Quiz, error) {
	return s.repo.ListByAuthor(authorID)
}

// Publish marks the private quiz public and upserts it into the community
// pool. A fresh entry starts unrated; re-publishing updates the content in
// place and keeps the accumulated rating.
func (s *quizService) Publish(ctx context.Context, quizID string) (*SharedQuiz, error) {
	log := config.WithContext(ctx)

	quiz, err := s.repo.GetByID(quizID)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, ErrQuizNotFound
	}

	quiz.IsPublic = true
	if err := s.db.Model(&Quiz{}).Where("id = ?", quiz.ID).Update("is_public", true).Error; err != nil {
		log.WithError(err).Error("Failed to flag quiz as public")
		return nil, err
	}

	questionsJSON, err := json.Marshal(quiz.Questions)
	if err != nil {
		return nil, err
	}

	shared, err := s.repo.GetShared(quizID)
	if err != nil {
		return nil, err
	}
	if shared == nil {
		shared = &SharedQuiz{
			QuizID:      quiz.ID,
			Rating:      0,
			RatingCount: 0,
		}
	}

	shared.AuthorID = quiz.AuthorID
	shared.Title = quiz.Title
	shared.Subject = quiz.Subject
	shared.Grade = quiz.Grade
	shared.Difficulty = quiz.Difficulty
	shared.Questions = questionsJSON

	if err := s.repo.UpsertShared(shared); err != nil {
		log.WithError(err).Error("Failed to publish quiz to community pool")
		return nil, err
	}

	log.Infof("Published quiz %s to community pool", quiz.ID)
	return shared, nil
}

// Rate folds one vote into the running mean:
// newAvg = (oldAvg*oldCount + rating) / (oldCount + 1).
func (s *quizService) Rate(ctx context.Context, quizID string, rating float64) (*SharedQuiz, error) {
	log := config.WithContext(ctx)

	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	shared, err := s.repo.GetShared(quizID)
	if err != nil {
		return nil, err
	}
	if shared == nil {
		return nil, ErrQuizNotFound
	}

	shared.Rating = (shared.Rating*float64(shared.RatingCount) + rating) / float64(shared.RatingCount+1)
	shared.RatingCount++

	if err := s.repo.SaveShared(shared); err != nil {
		log.WithError(err).Error("Failed to persist quiz rating")
		return nil, err
	}
	return shared, nil
}

func (s *quizService) ListCommunity(ctx context.Context, subject string) ([]*SharedQuiz, error) {
	return s.repo.ListShared(subject)
}

func (s *quizService) AddAttempt(ctx context.Context, attempt *QuizAttempt) error {
	if attempt.Score < 0 || attempt.TotalQuestions <= 0 || attempt.Score > attempt.TotalQuestions {
		return ErrInvalidAttempt
	}

	attempt.Accuracy = float64(attempt.Score) / float64(attempt.TotalQuestions) * 100

	return s.repo.CreateAttempt(attempt)
}

func (s *quizService) ListAttempts(ctx context.Context, userID uuid.UUID) ([]*QuizAttempt, error) {
	return s.repo.ListAttemptsByUser(userID)
}
