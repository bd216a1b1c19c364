package services

import (
	"errors"

	"github.com/anjiri1684/tutor_marketplace/apperrors"
	"github.com/anjiri1684/tutor_marketplace/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IdentityMetadata is the optional payload carried by a new-identity
// event from the auth collaborator.
type IdentityMetadata struct {
	FullName *string
	UserType *string
}

// BootstrapProfile creates exactly one profile for a fresh identity.
// A pre-existing profile for the same id or email is a conflict and
// fails the whole registration; it is never a silent no-op.
func BootstrapProfile(db *gorm.DB, id uuid.UUID, email, passwordHash string, meta IdentityMetadata) (*models.Profile, error) {
	var existing models.Profile
	err := db.Where("id = ? OR email = ?", id, email).First(&existing).Error
	if err == nil {
		return nil, apperrors.Conflict("a profile already exists for this identity")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile := models.Profile{
		ID:       id,
		Email:    email,
		Password: passwordHash,
		FullName: "New User",
		Role:     models.RoleStudent,
	}
	if meta.FullName != nil && *meta.FullName != "" {
		profile.FullName = *meta.FullName
	}
	// The admin role is seeded, never granted from registration metadata.
	if meta.UserType != nil && *meta.UserType == models.RoleTeacher {
		profile.Role = models.RoleTeacher
	}

	if err := db.Create(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("a profile already exists for this identity")
		}
		return nil, err
	}

	return &profile, nil
}
