package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/devhive/backend/internal/models"
	"github.com/devhive/backend/internal/types"
)

var ErrNotFound = errors.New("profile not found")

// DevService handles profile read and mutation operations
type DevService struct {
	db *gorm.DB
}

func NewDevService(db *gorm.DB) *DevService {
	return &DevService{
		db: db,
	}
}

// List returns all profiles in the minimal name projection
func (s *DevService) List(ctx context.Context) ([]types.DevSummary, error) {
	summaries := []types.DevSummary{}
	err := s.db.WithContext(ctx).
		Model(&models.Dev{}).
		Select("id", "firstname", "middlename", "lastname").
		Find(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// Get returns the richer projection for exactly one profile
func (s *DevService) Get(ctx context.Context, id string) (*types.DevProfile, error) {
	var profile types.DevProfile
	err := s.db.WithContext(ctx).
		Model(&models.Dev{}).
		Select("id", "username", "firstname", "middlename", "lastname", "bio", "stacks", "links", "avatar_url").
		Where("id = ?", id).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// Search returns profiles whose username or any name field contains the
// term as a substring, in the same projection as List.
func (s *DevService) Search(ctx context.Context, term string) ([]types.DevSummary, error) {
	pattern := "%" + term + "%"
	summaries := []types.DevSummary{}
	err := s.db.WithContext(ctx).
		Model(&models.Dev{}).
		Select("id", "firstname", "middlename", "lastname").
		Where("username LIKE ? OR firstname LIKE ? OR middlename LIKE ? OR lastname LIKE ?",
			pattern, pattern, pattern, pattern).
		Find(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// Update applies the provided fields as a partial update keyed by id.
// Last writer wins; an id with no matching row is not an error, matching
// the delete semantics.
func (s *DevService) Update(ctx context.Context, req *types.UpdateDevRequest) error {
	values := map[string]interface{}{}
	if req.Username != nil {
		values["username"] = *req.Username
	}
	if req.Firstname != nil {
		values["firstname"] = *req.Firstname
	}
	if req.Middlename != nil {
		values["middlename"] = *req.Middlename
	}
	if req.Lastname != nil {
		values["lastname"] = *req.Lastname
	}
	if req.Bio != nil {
		values["bio"] = *req.Bio
	}
	if req.Stacks != nil {
		values["stacks"] = models.StringArray(*req.Stacks)
	}
	if req.Links != nil {
		values["links"] = models.LinkList(*req.Links)
	}
	if req.Password != nil {
		hash, err := hashPassword(*req.Password)
		if err != nil {
			return err
		}
		values["password_hash"] = hash
	}

	err := s.db.WithContext(ctx).
		Model(&models.Dev{}).
		Where("id = ?", req.ID).
		Updates(values).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

// Delete removes the matching record unconditionally; deleting an id that
// no longer exists still succeeds.
func (s *DevService) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&models.Dev{}, "id = ?", id).Error
}
