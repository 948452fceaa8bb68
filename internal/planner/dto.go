package planner

import util "github.com/studyhive/studyhive-lambda/internal/utils"

type CreateEventDTO struct {
	Title       string              `json:"title" validate:"required"`
	Description string              `json:"description"`
	Subject     string              `json:"subject"`
	StartDate   *util.LocalDateTime `json:"start_date"`
	DueDate     *util.LocalDateTime `json:"due_date"`
	AllDay      bool                `json:"all_day"`
}

type UpdateEventDTO struct {
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	Subject     *string             `json:"subject"`
	Status      *EventStatus        `json:"status"`
	StartDate   *util.LocalDateTime `json:"start_date"`
	DueDate     *util.LocalDateTime `json:"due_date"`
	AllDay      *bool               `json:"all_day"`
}

type EventStats struct {
	Total      int `json:"total"`
	Todo       int `json:"todo"`
	InProgress int `json:"in_progress"`
	Done       int `json:"done"`
	Overdue    int `json:"overdue"`
}

type DashboardStatsResponse struct {
	Stats      EventStats `json:"stats"`
	Month      []*Event   `json:"month"`
	LastEvents []*Event   `json:"last_events"`
}
