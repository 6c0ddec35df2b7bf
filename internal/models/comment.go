package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is free text attached to a lead by an agent.
// Collection: comments
type Comment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Lead        primitive.ObjectID `bson:"lead" json:"lead"`
	Author      primitive.ObjectID `bson:"author" json:"author"`
	CommentText string             `bson:"commentText" json:"commentText"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// CreateCommentRequest is the body of POST /leads/{id}/comments. The lead
// comes from the path.
type CreateCommentRequest struct {
	Author      string `json:"author" validate:"required,objectid"`
	CommentText string `json:"commentText" validate:"required"`
}

// NewComment validates req and binds the comment to leadID. The lead is
// not looked up.
func NewComment(leadID primitive.ObjectID, req CreateCommentRequest) (*Comment, error) {
	req.CommentText = strings.TrimSpace(req.CommentText)
	req.Author = strings.TrimSpace(req.Author)

	if err := validateStruct(req); err != nil {
		return nil, err
	}

	author, _ := primitive.ObjectIDFromHex(req.Author)
	return &Comment{
		Lead:        leadID,
		Author:      author,
		CommentText: req.CommentText,
	}, nil
}

// CommentView is a comment with its lead and author populated.
type CommentView struct {
	ID          primitive.ObjectID `json:"id"`
	Lead        *LeadRef           `json:"lead"`
	Author      *AgentRef          `json:"author"`
	CommentText string             `json:"commentText"`
	CreatedAt   time.Time          `json:"createdAt"`
}

func (c *Comment) View(lead *LeadRef, author *AgentRef) *CommentView {
	return &CommentView{
		ID:          c.ID,
		Lead:        lead,
		Author:      author,
		CommentText: c.CommentText,
		CreatedAt:   c.CreatedAt,
	}
}
