package out

import (
	"context"

	"social_server/core/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository is the persistence boundary for user documents.
// Lookup methods return (nil, nil) when no document matches.
type UserRepository interface {
	List(ctx context.Context) ([]*domain.User, error)
	ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, id primitive.ObjectID, username, email string) (*domain.User, error)
	// Delete reports whether a document was removed.
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)

	// Friend list mutations use set-insert / pull semantics and return the
	// updated user, or nil when the user does not exist.
	AddFriend(ctx context.Context, userID, friendID primitive.ObjectID) (*domain.User, error)
	RemoveFriend(ctx context.Context, userID, friendID primitive.ObjectID) (*domain.User, error)
	// PullFriendFromAll removes friendID from every user's friend list.
	PullFriendFromAll(ctx context.Context, friendID primitive.ObjectID) error

	// Thought reference maintenance.
	AddThought(ctx context.Context, userID, thoughtID primitive.ObjectID) (*domain.User, error)
	// PullThoughtFromAll removes thoughtID from every user's thought list.
	PullThoughtFromAll(ctx context.Context, thoughtID primitive.ObjectID) error
}
