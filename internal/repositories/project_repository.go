package repositories

import (
	"github.com/anvers19/devfolio/backend/internal/models"
	"gorm.io/gorm"
)

// ProjectRepository defines the interface for project data operations
type ProjectRepository interface {
	CreateProject(project *models.Project) error
	GetProjectByID(id string) (*models.Project, error)
	GetProjects(page, limit int) ([]models.Project, int64, error)
	DeleteProject(id string) error
}

// PostgresProjectRepository implements ProjectRepository for PostgreSQL
type PostgresProjectRepository struct {
	db *gorm.DB
}

// NewPostgresProjectRepository creates a new PostgresProjectRepository
func NewPostgresProjectRepository(db *gorm.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

// CreateProject creates a new project in PostgreSQL
func (r *PostgresProjectRepository) CreateProject(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetProjectByID retrieves a project by ID from PostgreSQL
func (r *PostgresProjectRepository) GetProjectByID(id string) (*models.Project, error) {
	var project models.Project
	if err := r.db.Where("id = ?", id).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// GetProjects retrieves projects newest first.
func (r *PostgresProjectRepository) GetProjects(page, limit int) ([]models.Project, int64, error) {
	var total int64
	if err := r.db.Model(&models.Project{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []models.Project
	offset := (page - 1) * limit
	err := r.db.Order("date DESC").Offset(offset).Limit(limit).Find(&projects).Error
	return projects, total, err
}

// DeleteProject deletes a project by ID from PostgreSQL
func (r *PostgresProjectRepository) DeleteProject(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Project{}).Error
}
