package repositories

import (
	"errors"
	"time"

	"github.com/anvers19/devfolio/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	HasUserLikedPost(postID, userID string) (bool, error)
	ToggleLike(postID, userID string) (liked bool, err error)
	GetLikesCountByPostID(postID string) (int64, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// HasUserLikedPost reports whether an active like exists for (post, user).
func (r *PostgresLikeRepository) HasUserLikedPost(postID, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	return count > 0, err
}

// ToggleLike likes the post if no active like exists, otherwise removes the
// like. A previously soft-deleted like is restored rather than duplicated.
// Returns the resulting state: true when the post is now liked.
func (r *PostgresLikeRepository) ToggleLike(postID, userID string) (bool, error) {
	var like models.Like
	err := r.db.Where("post_id = ? AND user_id = ?", postID, userID).First(&like).Error
	if err == nil {
		// Active like: toggle off.
		if err := r.db.Delete(&like).Error; err != nil {
			return true, err
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	// Restore a soft-deleted like if one exists for this pair.
	var deleted models.Like
	err = r.db.Unscoped().
		Where("post_id = ? AND user_id = ? AND deleted_at IS NOT NULL", postID, userID).
		First(&deleted).Error
	if err == nil {
		err = r.db.Unscoped().Model(&deleted).
			Updates(map[string]interface{}{"deleted_at": nil, "created_at": time.Now()}).Error
		return err == nil, err
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	like = models.Like{ID: uuid.NewString(), PostID: postID, UserID: userID}
	if err := r.db.Create(&like).Error; err != nil {
		return false, err
	}
	return true, nil
}

// GetLikesCountByPostID counts active likes for a post.
func (r *PostgresLikeRepository) GetLikesCountByPostID(postID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
