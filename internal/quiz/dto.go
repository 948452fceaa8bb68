package quiz

import "github.com/google/uuid"

type AddAttemptDTO struct {
	QuizID         *uuid.UUID `json:"quiz_id"`
	AssignmentID   *uuid.UUID `json:"assignment_id"`
	Title          string     `json:"title" validate:"required"`
	Subject        string     `json:"subject"`
	Score          int        `json:"score" validate:"gte=0"`
	TotalQuestions int        `json:"total_questions" validate:"gt=0"`
}

type RateQuizDTO struct {
	Rating float64 `json:"rating" validate:"required,gte=1,lte=5"`
}

type QuizWithQuestionsDTO struct {
	Quiz      *Quiz           `json:"quiz"`
	Questions []*QuizQuestion `json:"questions"`
}
