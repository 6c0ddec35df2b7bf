package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SalesAgent is a user responsible for one or more leads.
// Collection: agents
type SalesAgent struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// CreateAgentRequest is the body of POST /agents
type CreateAgentRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// NewSalesAgent validates req and returns an agent ready to be stored.
func NewSalesAgent(req CreateAgentRequest) (*SalesAgent, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := validateStruct(req); err != nil {
		return nil, err
	}

	return &SalesAgent{
		Name:  req.Name,
		Email: req.Email,
	}, nil
}

// AgentRef is the populated form of an agent reference.
type AgentRef struct {
	ID    primitive.ObjectID `bson:"_id" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email,omitempty" json:"email,omitempty"`
}
