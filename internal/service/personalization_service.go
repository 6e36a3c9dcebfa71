package service

import (
	"context"
	"strings"

	"friendconnect/internal/models"
	"friendconnect/internal/repository"
)

// PersonalizationService manages per-user hobby and interest tags.
type PersonalizationService struct {
	tagRepo  repository.PersonalizationRepository
	userRepo repository.UserRepository
}

// NewPersonalizationService returns a new PersonalizationService.
func NewPersonalizationService(tagRepo repository.PersonalizationRepository, userRepo repository.UserRepository) *PersonalizationService {
	return &PersonalizationService{tagRepo: tagRepo, userRepo: userRepo}
}

// AddTag appends a tag row for the user. Duplicate values are allowed, as the
// legacy behavior permits.
func (s *PersonalizationService) AddTag(ctx context.Context, userID uint, kind models.TagKind, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return models.NewValidationError("Invalid inputs")
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	return s.tagRepo.Add(ctx, &models.PersonalizationTag{
		UserID: userID,
		Kind:   kind,
		Value:  value,
	})
}

// RemoveTag deletes the user's first tag matching (kind, value).
func (s *PersonalizationService) RemoveTag(ctx context.Context, userID uint, kind models.TagKind, value string) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.tagRepo.RemoveFirst(ctx, userID, kind, value)
}

// ListTags returns the user's hobby and interest values.
func (s *PersonalizationService) ListTags(ctx context.Context, userID uint) (hobbies, interests []string, err error) {
	tags, err := s.tagRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	hobbies = make([]string, 0, len(tags))
	interests = make([]string, 0, len(tags))
	for _, t := range tags {
		switch t.Kind {
		case models.TagKindHobby:
			hobbies = append(hobbies, t.Value)
		case models.TagKindInterest:
			interests = append(interests, t.Value)
		}
	}
	return hobbies, interests, nil
}
