package in

import (
	"context"

	"social_server/core/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FriendService defines the interface for friend-list operations.
// The relation is stored one-directionally: adding B to A's list does
// not touch B's list.
type FriendService interface {
	AddFriend(ctx context.Context, userID, friendID primitive.ObjectID) (*domain.User, error)
	RemoveFriend(ctx context.Context, userID, friendID primitive.ObjectID) (*domain.User, error)
}
