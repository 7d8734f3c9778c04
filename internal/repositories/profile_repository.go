package repositories

import (
	"errors"

	"github.com/anvers19/devfolio/backend/internal/models"
	"gorm.io/gorm"
)

// ProfileRepository defines the interface for the singleton profile row
type ProfileRepository interface {
	GetProfile() (*models.Profile, error)
	UpdateProfile(profile *models.Profile) error
}

// PostgresProfileRepository implements ProfileRepository for PostgreSQL
type PostgresProfileRepository struct {
	db *gorm.DB
}

// NewPostgresProfileRepository creates a new PostgresProfileRepository
func NewPostgresProfileRepository(db *gorm.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

// GetProfile returns the profile row, creating an empty one on first access.
func (r *PostgresProfileRepository) GetProfile() (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Where("id = ?", 1).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.Profile{ID: 1}
		if err := r.db.Create(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile saves the profile row (always ID 1).
func (r *PostgresProfileRepository) UpdateProfile(profile *models.Profile) error {
	profile.ID = 1
	return r.db.Save(profile).Error
}
