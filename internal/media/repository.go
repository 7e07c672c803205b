package media

import (
	"context"

	"gorm.io/gorm"

	"github.com/watchloghq/watchlog/pkg/db/models"
	"github.com/watchloghq/watchlog/pkg/pagination"
)

// Repository owns persistence for media rows. It is handed its connection
// explicitly; nothing in this package reaches for a shared global handle.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Transact runs fn against a repository bound to one transaction; fn
// returning an error rolls everything back.
func (r *Repository) Transact(ctx context.Context, fn func(txRepo *Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}

// Create inserts a new media row.
func (r *Repository) Create(ctx context.Context, record *models.Media) (*models.Media, error) {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// FindByID loads a single media row.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Media, error) {
	var record models.Media
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// Save persists every field of an existing media row.
func (r *Repository) Save(ctx context.Context, record *models.Media) (*models.Media, error) {
	if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// Delete hard-deletes the row and reports how many rows matched.
func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Media{}, "id = ?", id)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// List returns one page of media rows, newest first, plus the unfiltered
// total. The id tiebreaker keeps page walks lossless when created_at ties.
func (r *Repository) List(ctx context.Context, params pagination.Params) ([]models.Media, int64, error) {
	params = pagination.Normalize(params)

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Media{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.Media
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
