package out

import (
	"context"

	"social_server/core/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ThoughtRepository is the persistence boundary for thought documents,
// including their embedded reactions. Lookup methods return (nil, nil)
// when no document matches.
type ThoughtRepository interface {
	// List returns all thoughts ordered by createdAt descending.
	List(ctx context.Context) ([]*domain.Thought, error)
	ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.Thought, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Thought, error)
	Create(ctx context.Context, thought *domain.Thought) error
	UpdateText(ctx context.Context, id primitive.ObjectID, text string) (*domain.Thought, error)
	// Delete reports whether a document was removed.
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	// DeleteByUsername removes every thought authored under username and
	// returns the number deleted.
	DeleteByUsername(ctx context.Context, username string) (int64, error)

	// Embedded reaction operations. Each returns the updated parent
	// thought, or nil when no matching thought exists.
	AddReaction(ctx context.Context, thoughtID primitive.ObjectID, reaction *domain.Reaction) (*domain.Thought, error)
	RemoveReaction(ctx context.Context, thoughtID, reactionID primitive.ObjectID) (*domain.Thought, error)
	UpdateReactionBody(ctx context.Context, reactionID primitive.ObjectID, body string) (*domain.Thought, error)
	// GetByReactionID returns the thought containing the reaction, or nil.
	GetByReactionID(ctx context.Context, reactionID primitive.ObjectID) (*domain.Thought, error)
}
