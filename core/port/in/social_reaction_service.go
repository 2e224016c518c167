package in

import (
	"context"

	"social_server/core/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReactionService defines the interface for reaction operations.
// Mutations return the updated parent thought, matching the HTTP surface.
type ReactionService interface {
	CreateReaction(ctx context.Context, thoughtID primitive.ObjectID, req *CreateReactionRequest) (*domain.Thought, error)
	// GetReaction searches all thoughts for the reaction with this id.
	GetReaction(ctx context.Context, reactionID primitive.ObjectID) (*domain.Reaction, error)
	UpdateReaction(ctx context.Context, reactionID primitive.ObjectID, body string) (*domain.Thought, error)
	// DeleteReaction removes the reaction from the named thought. A missing
	// reaction inside an existing thought is not an error.
	DeleteReaction(ctx context.Context, thoughtID, reactionID primitive.ObjectID) (*domain.Thought, error)
}

type CreateReactionRequest struct {
	ReactionBody string             `json:"reactionBody"`
	UserID       primitive.ObjectID `json:"-"`
}

type UpdateReactionRequest struct {
	ReactionBody string `json:"reactionBody"`
}
