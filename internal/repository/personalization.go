package repository

import (
	"context"
	"errors"

	"friendconnect/internal/models"

	"gorm.io/gorm"
)

// PersonalizationRepository defines persistence operations for hobby and
// interest tags.
type PersonalizationRepository interface {
	Add(ctx context.Context, tag *models.PersonalizationTag) error
	RemoveFirst(ctx context.Context, userID uint, kind models.TagKind, value string) error
	ListByUser(ctx context.Context, userID uint) ([]models.PersonalizationTag, error)
	UserIDsWithAnyValue(ctx context.Context, values []string, excludeIDs []uint) ([]uint, error)
}

type personalizationRepository struct {
	db *gorm.DB
}

// NewPersonalizationRepository returns a new PersonalizationRepository implementation.
func NewPersonalizationRepository(db *gorm.DB) PersonalizationRepository {
	return &personalizationRepository{db: db}
}

func (r *personalizationRepository) Add(ctx context.Context, tag *models.PersonalizationTag) error {
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// RemoveFirst deletes the caller's first tag matching (kind, value). Lookup
// is scoped to the owning user, never global by value.
func (r *personalizationRepository) RemoveFirst(ctx context.Context, userID uint, kind models.TagKind, value string) error {
	var tag models.PersonalizationTag
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND kind = ? AND value = ?", userID, kind, value).
		Order("id").
		First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("No such " + string(kind) + " exist")
		}
		return models.NewInternalError(err)
	}
	if err := r.db.WithContext(ctx).Delete(&models.PersonalizationTag{}, tag.ID).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *personalizationRepository) ListByUser(ctx context.Context, userID uint) ([]models.PersonalizationTag, error) {
	var tags []models.PersonalizationTag
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&tags).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return tags, nil
}

// UserIDsWithAnyValue returns ids of users holding at least one tag whose
// value is in values, regardless of kind, excluding excludeIDs.
func (r *personalizationRepository) UserIDsWithAnyValue(ctx context.Context, values []string, excludeIDs []uint) ([]uint, error) {
	if len(values) == 0 {
		return nil, nil
	}
	var ids []uint
	q := r.db.WithContext(ctx).
		Model(&models.PersonalizationTag{}).
		Distinct("user_id").
		Where("value IN ?", values)
	if len(excludeIDs) > 0 {
		q = q.Where("user_id NOT IN ?", excludeIDs)
	}
	if err := q.Pluck("user_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}
