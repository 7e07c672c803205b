package models

import (
	"time"

	"github.com/watchloghq/watchlog/pkg/enums"
)

// Media is one tracked movie or TV show. The id is immutable once issued and
// created_at never changes after insert; updated_at refreshes on every save.
type Media struct {
	ID          int64           `gorm:"column:id;primaryKey;autoIncrement"`
	Title       string          `gorm:"column:title;not null"`
	Type        enums.MediaType `gorm:"column:type;type:text;not null"`
	Director    string          `gorm:"column:director;not null"`
	Budget      *float64        `gorm:"column:budget"`
	BudgetLabel *string         `gorm:"column:budget_label"`
	Location    *string         `gorm:"column:location"`
	DurationMin *int            `gorm:"column:duration_min"`
	Year        *string         `gorm:"column:year"`
	Notes       *string         `gorm:"column:notes"`
	PosterURL   *string         `gorm:"column:poster_url"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName pins the table name regardless of GORM pluralization rules.
func (Media) TableName() string {
	return "media"
}
