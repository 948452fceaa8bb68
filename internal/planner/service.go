package planner

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/studyhive/studyhive-lambda/internal/config"
	util "github.com/studyhive/studyhive-lambda/internal/utils"
)

var (
	ErrEventNotFound = errors.New("planner event not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrInvalidStatus = errors.New("invalid event status")
)

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, dto CreateEventDTO) (*Event, error)
	List(ctx context.Context, userID uuid.UUID) ([]*Event, error)
	Update(ctx context.Context, id, userID uuid.UUID, dto UpdateEventDTO) (*Event, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	DashboardStats(ctx context.Context, userID uuid.UUID, now time.Time) (*DashboardStatsResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, dto CreateEventDTO) (*Event, error) {
	e := Event{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       dto.Title,
		Description: dto.Description,
		Subject:     dto.Subject,
		Status:      StatusTodo,
		StartDate:   dto.StartDate,
		DueDate:     dto.DueDate,
		AllDay:      dto.AllDay,
	}

	if err := s.repo.Create(&e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]*Event, error) {
	return s.repo.FindAllByUser(userID)
}

func (s *service) Update(ctx context.Context, id, userID uuid.UUID, dto UpdateEventDTO) (*Event, error) {
	e, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrEventNotFound
	}
	if e.UserID != userID {
		return nil, ErrUnauthorized
	}

	if dto.Title != nil {
		e.Title = *dto.Title
	}
	if dto.Description != nil {
		e.Description = *dto.Description
	}
	if dto.Subject != nil {
		e.Subject = *dto.Subject
	}
	if dto.Status != nil {
		if !dto.Status.IsValid() {
			return nil, ErrInvalidStatus
		}
		e.Status = *dto.Status
	}
	if dto.StartDate != nil {
		e.StartDate = dto.StartDate
	}
	if dto.DueDate != nil {
		e.DueDate = dto.DueDate
	}
	if dto.AllDay != nil {
		e.AllDay = *dto.AllDay
	}

	if err := s.repo.Save(e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	e, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if e == nil {
		return ErrEventNotFound
	}
	if e.UserID != userID {
		return ErrUnauthorized
	}

	return s.repo.Delete(id)
}

func (s *service) DashboardStats(ctx context.Context, userID uuid.UUID, now time.Time) (*DashboardStatsResponse, error) {
	log := config.WithContext(ctx)

	events, err := s.repo.FindAllByUser(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load events for dashboard")
		return nil, err
	}

	stats := EventStats{Total: len(events)}
	for _, e := range events {
		switch e.Status {
		case StatusTodo:
			stats.Todo++
		case StatusInProgress:
			stats.InProgress++
		case StatusDone:
			stats.Done++
		}
		if e.Status != StatusDone && e.DueDate != nil {
			if due := util.ToTimePtr(e.DueDate); due != nil && due.Before(now) {
				stats.Overdue++
			}
		}
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)
	month, err := s.repo.FindByUserInRange(userID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	recent, err := s.repo.FindRecentByUser(userID, 5)
	if err != nil {
		return nil, err
	}

	return &DashboardStatsResponse{
		Stats:      stats,
		Month:      month,
		LastEvents: recent,
	}, nil
}
