package repositories

import (
	"time"

	"github.com/anvers19/devfolio/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostViewRepository defines the interface for reading-history operations
type PostViewRepository interface {
	RecordView(userID, postID string) error
	GetHistory(userID string, page, limit int) ([]models.HistoryEntry, error)
}

// PostgresPostViewRepository implements PostViewRepository for PostgreSQL
type PostgresPostViewRepository struct {
	db *gorm.DB
}

// NewPostgresPostViewRepository creates a new PostgresPostViewRepository
func NewPostgresPostViewRepository(db *gorm.DB) *PostgresPostViewRepository {
	return &PostgresPostViewRepository{db: db}
}

// RecordView upserts the (user, post) view row, bumping ViewedAt on repeats.
func (r *PostgresPostViewRepository) RecordView(userID, postID string) error {
	view := models.PostView{
		ID:       uuid.NewString(),
		UserID:   userID,
		PostID:   postID,
		ViewedAt: time.Now(),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"viewed_at"}),
	}).Create(&view).Error
}

// GetHistory returns the user's recently viewed posts, newest first, with
// post display fields joined.
func (r *PostgresPostViewRepository) GetHistory(userID string, page, limit int) ([]models.HistoryEntry, error) {
	var entries []models.HistoryEntry
	offset := (page - 1) * limit
	err := r.db.Model(&models.PostView{}).
		Select("post_views.post_id, post_views.viewed_at, posts.title AS post_title, posts.excerpt AS post_excerpt").
		Joins("LEFT JOIN posts ON posts.id = post_views.post_id").
		Where("post_views.user_id = ?", userID).
		Order("post_views.viewed_at DESC").
		Offset(offset).Limit(limit).
		Find(&entries).Error
	return entries, err
}
