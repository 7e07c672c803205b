package media

import (
	"time"

	"github.com/watchloghq/watchlog/pkg/db/models"
)

// MediaDTO is the wire representation of one tracked record. Field names
// follow the public API contract, not Go conventions.
type MediaDTO struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Director    string    `json:"director"`
	Budget      *float64  `json:"budget,omitempty"`
	BudgetLabel *string   `json:"budgetLabel,omitempty"`
	Location    *string   `json:"location,omitempty"`
	DurationMin *int      `json:"durationMin,omitempty"`
	Year        *string   `json:"year,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
	PosterURL   *string   `json:"posterUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ListResultDTO is the paginated list envelope.
type ListResultDTO struct {
	Page  int        `json:"page"`
	Limit int        `json:"limit"`
	Total int64      `json:"total"`
	Items []MediaDTO `json:"items"`
}

// NewMediaDTO builds a DTO from the persisted model.
func NewMediaDTO(record *models.Media) *MediaDTO {
	return &MediaDTO{
		ID:          record.ID,
		Title:       record.Title,
		Type:        record.Type.String(),
		Director:    record.Director,
		Budget:      record.Budget,
		BudgetLabel: record.BudgetLabel,
		Location:    record.Location,
		DurationMin: record.DurationMin,
		Year:        record.Year,
		Notes:       record.Notes,
		PosterURL:   record.PosterURL,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

// NewListResultDTO flattens one page of rows into the list envelope.
func NewListResultDTO(page, limit int, total int64, items []models.Media) *ListResultDTO {
	dtos := make([]MediaDTO, len(items))
	for i := range items {
		dtos[i] = *NewMediaDTO(&items[i])
	}
	return &ListResultDTO{
		Page:  page,
		Limit: limit,
		Total: total,
		Items: dtos,
	}
}
