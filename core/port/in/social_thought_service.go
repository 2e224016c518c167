package in

import (
	"context"

	"social_server/core/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ThoughtService defines the interface for thought operations
type ThoughtService interface {
	// ListThoughts returns all thoughts, newest first.
	ListThoughts(ctx context.Context) ([]*domain.Thought, error)
	GetThought(ctx context.Context, id primitive.ObjectID) (*domain.Thought, error)
	// CreateThought stores the thought and links it into the author's
	// thought list. The link step is a separate write; when it fails the
	// thought stays stored and a distinct error is returned.
	CreateThought(ctx context.Context, req *CreateThoughtRequest) (*domain.Thought, error)
	UpdateThought(ctx context.Context, id primitive.ObjectID, text string) (*domain.Thought, error)
	// DeleteThought removes the thought and pulls its id from every user's
	// thought list that contains it.
	DeleteThought(ctx context.Context, id primitive.ObjectID) error
}

type CreateThoughtRequest struct {
	ThoughtText string             `json:"thoughtText"`
	UserID      primitive.ObjectID `json:"-"`
}

type UpdateThoughtRequest struct {
	ThoughtText string `json:"thoughtText"`
}
