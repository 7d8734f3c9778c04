package repositories

import (
	"github.com/anvers19/devfolio/backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id string) (*models.Post, error)
	GetPosts(page, limit int, tag string) ([]models.PostWithAuthor, int64, error)
	GetPostsByUserID(userID string, page, limit int) ([]models.Post, error)
	DeletePost(id string) error
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost creates a new post in PostgreSQL
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a post by ID from PostgreSQL
func (r *PostgresPostRepository) GetPostByID(id string) (*models.Post, error) {
	var post models.Post
	if err := r.db.Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPosts retrieves posts newest first with the author's username joined.
// A non-empty tag narrows the result to posts carrying that tag; tags are
// stored as a JSON string array, so the match is on the quoted tag.
func (r *PostgresPostRepository) GetPosts(page, limit int, tag string) ([]models.PostWithAuthor, int64, error) {
	query := r.db.Model(&models.Post{})
	if tag != "" {
		query = query.Where("posts.tags LIKE ?", "%\""+tag+"\"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.PostWithAuthor
	offset := (page - 1) * limit
	err := query.
		Select("posts.*, users.username AS author_name").
		Joins("LEFT JOIN users ON users.id = posts.created_by").
		Order("posts.created_at DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

// GetPostsByUserID retrieves one author's posts, newest first.
func (r *PostgresPostRepository) GetPostsByUserID(userID string, page, limit int) ([]models.Post, error) {
	var posts []models.Post
	offset := (page - 1) * limit
	err := r.db.Where("created_by = ?", userID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, err
}

// DeletePost deletes a post by ID from PostgreSQL
func (r *PostgresPostRepository) DeletePost(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Post{}).Error
}
