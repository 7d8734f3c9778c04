package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Media is metadata for an uploaded file, stored in MongoDB. The file itself
// lives on local disk under the uploads directory.
type Media struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID      string             `json:"user_id" bson:"user_id"`
	Filename    string             `json:"filename" bson:"filename"`
	ContentType string             `json:"content_type" bson:"content_type"`
	Size        int64              `json:"size" bson:"size"`
	URL         string             `json:"url" bson:"url"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
}
