package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tag is a freestanding label referenced by leads.
// Collection: tags
type Tag struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// CreateTagRequest is the body of POST /tags
type CreateTagRequest struct {
	Name string `json:"name" validate:"required"`
}

func NewTag(req CreateTagRequest) (*Tag, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	return &Tag{Name: req.Name}, nil
}
