package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/watchloghq/watchlog/api/responses"
	"github.com/watchloghq/watchlog/api/validators"
	mediasvc "github.com/watchloghq/watchlog/internal/media"
	"github.com/watchloghq/watchlog/pkg/enums"
	pkgerrors "github.com/watchloghq/watchlog/pkg/errors"
	"github.com/watchloghq/watchlog/pkg/logger"
	"github.com/watchloghq/watchlog/pkg/pagination"
)

// CreateMedia handles POST /newMedia.
func CreateMedia(svc mediasvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "media service unavailable"))
			return
		}

		var payload createMediaRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toCreateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		record, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusCreated, record)
	}
}

// ListMedia handles GET /getMedia. Bad pagination input is clamped, never
// rejected.
func ListMedia(svc mediasvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "media service unavailable"))
			return
		}

		params := pagination.Params{
			Page:  validators.QueryInt(r, "page", pagination.DefaultPage),
			Limit: validators.QueryInt(r, "limit", pagination.DefaultLimit),
		}

		result, err := svc.List(r.Context(), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, result)
	}
}

// UpdateMedia handles PUT /update/{id}.
func UpdateMedia(svc mediasvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "media service unavailable"))
			return
		}

		id, err := mediaIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateMediaRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toUpdateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		record, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, record)
	}
}

// DeleteMedia handles DELETE /delete/{id}.
func DeleteMedia(svc mediasvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "media service unavailable"))
			return
		}

		id, err := mediaIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteNoContent(w)
	}
}

func mediaIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "media id must be numeric").
			WithDetails(map[string]string{"id": "must be numeric"})
	}
	return id, nil
}

type createMediaRequest struct {
	Title       string   `json:"title" validate:"required"`
	Type        string   `json:"type" validate:"required,oneof=MOVIE TV_SHOW"`
	Director    string   `json:"director" validate:"required"`
	Budget      *float64 `json:"budget,omitempty"`
	BudgetLabel *string  `json:"budgetLabel,omitempty"`
	Location    *string  `json:"location,omitempty"`
	DurationMin *int     `json:"durationMin,omitempty" validate:"omitempty,gt=0"`
	Year        *string  `json:"year,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
	PosterURL   *string  `json:"posterUrl,omitempty" validate:"omitempty,url"`
}

// Normalize trims the free-text fields and clears empty-string poster URLs
// before validation; an empty string means "no value", not a malformed URL.
func (r *createMediaRequest) Normalize() {
	r.Title = validators.SanitizeString(r.Title, 0)
	r.Director = validators.SanitizeString(r.Director, 0)
	if r.PosterURL != nil && strings.TrimSpace(*r.PosterURL) == "" {
		r.PosterURL = nil
	}
}

func (r createMediaRequest) toCreateInput() (mediasvc.CreateMediaInput, error) {
	mediaType, err := enums.ParseMediaType(strings.TrimSpace(r.Type))
	if err != nil {
		return mediasvc.CreateMediaInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid type").
			WithDetails(map[string]string{"type": "must be MOVIE or TV_SHOW"})
	}

	return mediasvc.CreateMediaInput{
		Title:       r.Title,
		Type:        mediaType,
		Director:    r.Director,
		Budget:      r.Budget,
		BudgetLabel: r.BudgetLabel,
		Location:    r.Location,
		DurationMin: r.DurationMin,
		Year:        r.Year,
		Notes:       r.Notes,
		PosterURL:   r.PosterURL,
	}, nil
}

type updateMediaRequest struct {
	Title       *string  `json:"title,omitempty"`
	Type        *string  `json:"type,omitempty" validate:"omitempty,oneof=MOVIE TV_SHOW"`
	Director    *string  `json:"director,omitempty"`
	Budget      *float64 `json:"budget,omitempty"`
	BudgetLabel *string  `json:"budgetLabel,omitempty"`
	Location    *string  `json:"location,omitempty"`
	DurationMin *int     `json:"durationMin,omitempty" validate:"omitempty,gt=0"`
	Year        *string  `json:"year,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
	PosterURL   *string  `json:"posterUrl,omitempty" validate:"omitempty,url"`
}

func (r *updateMediaRequest) Normalize() {
	if r.Title != nil {
		trimmed := validators.SanitizeString(*r.Title, 0)
		r.Title = &trimmed
	}
	if r.Director != nil {
		trimmed := validators.SanitizeString(*r.Director, 0)
		r.Director = &trimmed
	}
	if r.PosterURL != nil && strings.TrimSpace(*r.PosterURL) == "" {
		r.PosterURL = nil
	}
}

func (r updateMediaRequest) toUpdateInput() (mediasvc.UpdateMediaInput, error) {
	input := mediasvc.UpdateMediaInput{
		Title:       r.Title,
		Director:    r.Director,
		Budget:      r.Budget,
		BudgetLabel: r.BudgetLabel,
		Location:    r.Location,
		DurationMin: r.DurationMin,
		Year:        r.Year,
		Notes:       r.Notes,
		PosterURL:   r.PosterURL,
	}

	if r.Type != nil {
		mediaType, err := enums.ParseMediaType(strings.TrimSpace(*r.Type))
		if err != nil {
			return mediasvc.UpdateMediaInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid type").
				WithDetails(map[string]string{"type": "must be MOVIE or TV_SHOW"})
		}
		input.Type = &mediaType
	}

	return input, nil
}
