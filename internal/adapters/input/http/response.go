package http

import (
	"net/http"
	"time"

	"todolist-api/internal/domain"

	"github.com/google/uuid"
)

var (
	// Success response
	Success = Status{Code: http.StatusOK, Message: []string{"Success"}}
	// Created response
	Created = Status{Code: http.StatusCreated, Message: []string{"Created"}}
	// BadRequest response
	BadRequest = Status{Code: http.StatusBadRequest, Message: []string{"Sorry, Not responding because of incorrect syntax"}}
	// NotFound response
	NotFound = Status{Code: http.StatusNotFound, Message: []string{"Sorry, Data not found"}}
	// InternalServerError response
	InternalServerError = Status{Code: http.StatusInternalServerError, Message: []string{"Internal Server Error"}}
)

// ResponseBody struct - Generic HTTP response wrapper
type ResponseBody struct {
	Status Status      `json:"status,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

// Status struct
type Status struct {
	Code    int      `json:"code,omitempty"`
	Message []string `json:"message,omitempty"`
}

// withMessage returns a copy of status carrying msg instead of the default text
func withMessage(status Status, msg string) Status {
	status.Message = []string{msg}
	return status
}

type (
	// TodoResponse struct - HTTP response DTO for a single todo
	TodoResponse struct {
		ID          uuid.UUID `json:"id"`
		Title       string    `json:"title"`
		IsCompleted bool      `json:"isCompleted"`
		CreatedAt   time.Time `json:"createdAt"`
	}

	// ClimateResponse struct - HTTP response DTO for the latest sensor reading.
	// Values are preformatted; "--" stands in when there is no current reading.
	ClimateResponse struct {
		Source      string     `json:"source,omitempty"`
		Temperature string     `json:"temperature"`
		Humidity    string     `json:"humidity"`
		ReadAt      *time.Time `json:"read_at,omitempty"`
	}

	// HealthResponse struct
	HealthResponse struct {
		Store string `json:"store"`
	}
)

func toTodoResponse(item domain.TodoItem) TodoResponse {
	return TodoResponse{
		ID:          item.ID,
		Title:       item.Title,
		IsCompleted: item.IsCompleted,
		CreatedAt:   item.CreatedAt,
	}
}

func toClimateResponse(reading domain.ClimateReading, ok bool) ClimateResponse {
	if !ok {
		return ClimateResponse{
			Temperature: domain.ReadingPlaceholder,
			Humidity:    domain.ReadingPlaceholder,
		}
	}
	readAt := reading.ReadAt
	return ClimateResponse{
		Source:      reading.Source,
		Temperature: domain.FormatReading(reading.Temperature),
		Humidity:    domain.FormatReading(reading.Humidity),
		ReadAt:      &readAt,
	}
}
