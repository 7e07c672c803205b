package media

import (
	"context"
	"strings"
	"time"

	"github.com/watchloghq/watchlog/pkg/db"
	"github.com/watchloghq/watchlog/pkg/db/models"
	"github.com/watchloghq/watchlog/pkg/enums"
	pkgerrors "github.com/watchloghq/watchlog/pkg/errors"
	"github.com/watchloghq/watchlog/pkg/logger"
	"github.com/watchloghq/watchlog/pkg/pagination"
)

// Service exposes the list and mutation operations over the media store.
type Service interface {
	Create(ctx context.Context, input CreateMediaInput) (*MediaDTO, error)
	Update(ctx context.Context, id int64, input UpdateMediaInput) (*MediaDTO, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, params pagination.Params) (*ListResultDTO, error)
}

// CreateMediaInput holds the validated payload to create a record.
type CreateMediaInput struct {
	Title       string
	Type        enums.MediaType
	Director    string
	Budget      *float64
	BudgetLabel *string
	Location    *string
	DurationMin *int
	Year        *string
	Notes       *string
	PosterURL   *string
}

// UpdateMediaInput holds optional mutation values; nil means "leave as is".
type UpdateMediaInput struct {
	Title       *string
	Type        *enums.MediaType
	Director    *string
	Budget      *float64
	BudgetLabel *string
	Location    *string
	DurationMin *int
	Year        *string
	Notes       *string
	PosterURL   *string
}

type service struct {
	repo *Repository
	logg *logger.Logger
}

// NewService wires the media service to its repository.
func NewService(repo *Repository, logg *logger.Logger) Service {
	return &service{repo: repo, logg: logg}
}

func (s *service) Create(ctx context.Context, input CreateMediaInput) (*MediaDTO, error) {
	if err := validateCreateInput(&input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	record := &models.Media{
		Title:       input.Title,
		Type:        input.Type,
		Director:    input.Director,
		Budget:      input.Budget,
		BudgetLabel: input.BudgetLabel,
		Location:    input.Location,
		DurationMin: input.DurationMin,
		Year:        input.Year,
		Notes:       input.Notes,
		PosterURL:   input.PosterURL,
		// Both timestamps carry the same instant on insert.
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating media record")
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithMediaID(ctx, created.ID), "media.created")
	}
	return NewMediaDTO(created), nil
}

func (s *service) Update(ctx context.Context, id int64, input UpdateMediaInput) (*MediaDTO, error) {
	if err := validateUpdateInput(&input); err != nil {
		return nil, err
	}

	// The read-modify-write runs in one transaction so a concurrent delete
	// cannot land between the load and the save.
	var saved *models.Media
	err := s.repo.Transact(ctx, func(txRepo *Repository) error {
		record, err := txRepo.FindByID(ctx, id)
		if err != nil {
			if db.IsNotFound(err) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "media not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading media record")
		}

		applyUpdate(record, input)

		// autoUpdateTime refreshes updated_at on save.
		saved, err = txRepo.Save(ctx, record)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "saving media record")
		}
		return nil
	})
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			return nil, typed
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating media record")
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithMediaID(ctx, saved.ID), "media.updated")
	}
	return NewMediaDTO(saved), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting media record")
	}
	if rows == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "media not found")
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithMediaID(ctx, id), "media.deleted")
	}
	return nil
}

func (s *service) List(ctx context.Context, params pagination.Params) (*ListResultDTO, error) {
	params = pagination.Normalize(params)

	items, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing media records")
	}
	return NewListResultDTO(params.Page, params.Limit, total, items), nil
}

func validateCreateInput(input *CreateMediaInput) error {
	details := map[string]string{}

	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		details["title"] = "is required"
	}
	input.Director = strings.TrimSpace(input.Director)
	if input.Director == "" {
		details["director"] = "is required"
	}
	if !input.Type.IsValid() {
		details["type"] = "must be MOVIE or TV_SHOW"
	}
	if input.DurationMin != nil && *input.DurationMin <= 0 {
		details["durationMin"] = "must be positive"
	}

	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
	}
	return nil
}

func validateUpdateInput(input *UpdateMediaInput) error {
	details := map[string]string{}

	if input.Title != nil {
		trimmed := strings.TrimSpace(*input.Title)
		if trimmed == "" {
			details["title"] = "must be non-empty"
		}
		input.Title = &trimmed
	}
	if input.Director != nil {
		trimmed := strings.TrimSpace(*input.Director)
		if trimmed == "" {
			details["director"] = "must be non-empty"
		}
		input.Director = &trimmed
	}
	if input.Type != nil && !input.Type.IsValid() {
		details["type"] = "must be MOVIE or TV_SHOW"
	}
	if input.DurationMin != nil && *input.DurationMin <= 0 {
		details["durationMin"] = "must be positive"
	}

	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
	}
	return nil
}

// applyUpdate merges only the provided fields; everything else is retained
// byte for byte.
func applyUpdate(record *models.Media, input UpdateMediaInput) {
	if input.Title != nil {
		record.Title = *input.Title
	}
	if input.Type != nil {
		record.Type = *input.Type
	}
	if input.Director != nil {
		record.Director = *input.Director
	}
	if input.Budget != nil {
		record.Budget = input.Budget
	}
	if input.BudgetLabel != nil {
		record.BudgetLabel = input.BudgetLabel
	}
	if input.Location != nil {
		record.Location = input.Location
	}
	if input.DurationMin != nil {
		record.DurationMin = input.DurationMin
	}
	if input.Year != nil {
		record.Year = input.Year
	}
	if input.Notes != nil {
		record.Notes = input.Notes
	}
	if input.PosterURL != nil {
		record.PosterURL = input.PosterURL
	}
}
