package repositories

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// Common repository errors
var (
	// ErrNotFound is returned when a document is not found
	ErrNotFound = mongo.ErrNoDocuments

	// ErrDuplicateKey is returned when trying to insert a duplicate document
	ErrDuplicateKey = errors.New("duplicate key error")
)

// Domain-specific "not found" errors. They wrap mongo.ErrNoDocuments so
// both IsNotFound and errors.Is(err, ErrLeadNotFound) hold.
var (
	// ErrAgentNotFound is returned when a sales agent is not found
	ErrAgentNotFound = errors.New("agent not found")

	// ErrLeadNotFound is returned when a lead is not found
	ErrLeadNotFound = errors.New("lead not found")
)

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateKey checks if an error is a duplicate key error
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	return mongo.IsDuplicateKeyError(err) || errors.Is(err, ErrDuplicateKey)
}

// WrapNotFound wraps mongo.ErrNoDocuments with a domain-specific error
// This preserves the original MongoDB error while adding domain context
//
//	var lead models.Lead
//	err := r.collection.FindOne(ctx, filter).Decode(&lead)
//	if err != nil {
//	    return nil, WrapNotFound(err, ErrLeadNotFound)
//	}
func WrapNotFound(err error, domainErr error) error {
	if err == nil {
		return nil
	}
	// Only wrap if it's actually a "not found" error
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%w: %w", domainErr, err)
	}
	return err
}
