package friend

import (
	"context"

	"social_server/core/domain"
	"social_server/core/port/in"
	"social_server/core/port/out"
	"social_server/pkg/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service implements in.FriendService
type Service struct {
	userRepo out.UserRepository
}

// NewService creates a new FriendService
func NewService(userRepo out.UserRepository) in.FriendService {
	return &Service{userRepo: userRepo}
}

func (s *Service) AddFriend(ctx context.Context, userID, friendID primitive.ObjectID) (*domain.User, error) {
	if userID == friendID {
		return nil, apperr.InvalidInput("friendId", "you cannot add yourself as a friend")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperr.DatabaseError("get user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user")
	}
	if user.HasFriend(friendID) {
		return nil, apperr.Conflict("friend is already in the friend list")
	}

	// One-directional: the friend's own list is never touched, and the
	// friend's existence is not verified.
	updated, err := s.userRepo.AddFriend(ctx, userID, friendID)
	if err != nil {
		return nil, apperr.DatabaseError("add friend", err)
	}
	if updated == nil {
		return nil, apperr.NotFound("user")
	}
	return updated, nil
}

func (s *Service) RemoveFriend(ctx context.Context, userID, friendID primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperr.DatabaseError("get user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user")
	}

	// Removing an absent friend is a no-op, not an error.
	updated, err := s.userRepo.RemoveFriend(ctx, userID, friendID)
	if err != nil {
		return nil, apperr.DatabaseError("remove friend", err)
	}
	if updated == nil {
		return nil, apperr.NotFound("user")
	}
	return updated, nil
}
