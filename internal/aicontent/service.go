package aicontent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/studyhive/studyhive-lambda/internal/config"
)

type Service interface {
	GenerateQuestions(ctx context.Context, req QuestionRequest) ([]Question, error)
	GenerateLessonPlan(ctx context.Context, req LessonPlanRequest) (*LessonPlan, error)
	GenerateWorksheet(ctx context.Context, req WorksheetRequest) (*Worksheet, error)
	Summarize(ctx context.Context, req SummaryRequest) (*SummaryResponse, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

func (s *service) GenerateQuestions(ctx context.Context, req QuestionRequest) ([]Question, error) {
	raw, err := s.provider.SendPrompt(ctx, questionSystemPrompt, BuildQuestionPrompt(req))
	if err != nil {
		return nil, err
	}

	var questions []Question
	if err := decodeModelJSON(ctx, raw, &questions); err != nil {
		return nil, err
	}

	config.WithContext(ctx).Infof("[AICONTENT] Generated %d questions", len(questions))
	return questions, nil
}

func (s *service) GenerateLessonPlan(ctx context.Context, req LessonPlanRequest) (*LessonPlan, error) {
	raw, err := s.provider.SendPrompt(ctx, lessonPlanSystemPrompt, BuildLessonPlanPrompt(req))
	if err != nil {
		return nil, err
	}

	var plan LessonPlan
	if err := decodeModelJSON(ctx, raw, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *service) GenerateWorksheet(ctx context.Context, req WorksheetRequest) (*Worksheet, error) {
	raw, err := s.provider.SendPrompt(ctx, worksheetSystemPrompt, BuildWorksheetPrompt(req))
	if err != nil {
		return nil, err
	}

	var ws Worksheet
	if err := decodeModelJSON(ctx, raw, &ws); err != nil {
		return nil, err
	}
	return &ws, nil
}

func (s *service) Summarize(ctx context.Context, req SummaryRequest) (*SummaryResponse, error) {
	raw, err := s.provider.SendPrompt(ctx, summarySystemPrompt, BuildSummaryPrompt(req))
	if err != nil {
		return nil, err
	}

	var resp SummaryResponse
	if err := decodeModelJSON(ctx, raw, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func decodeModelJSON(ctx context.Context, raw string, out any) error {
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		config.WithContext(ctx).WithError(err).Errorf("[AICONTENT] Failed to decode model JSON. Cleaned content:\n%s", raw)
		return fmt.Errorf("failed to decode model response: %w", err)
	}
	return nil
}
