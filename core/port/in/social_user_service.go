package in

import (
	"context"

	"social_server/core/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService defines the interface for user operations
type UserService interface {
	// ListUsers returns all users with their thought references resolved.
	ListUsers(ctx context.Context) ([]*UserDetail, error)
	// GetUser returns one user with thoughts and friends fully resolved.
	GetUser(ctx context.Context, id primitive.ObjectID) (*UserDetail, error)
	CreateUser(ctx context.Context, req *CreateUserRequest) (*domain.User, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, req *UpdateUserRequest) (*domain.User, error)
	// DeleteUser removes the user, its thoughts (matched by username), and
	// every reference to it in other users' friend lists.
	DeleteUser(ctx context.Context, id primitive.ObjectID) error
}

// UserDetail is a user with reference fields resolved to full documents.
// Friends is nil for list results, where only thoughts are resolved.
type UserDetail struct {
	User     *domain.User
	Thoughts []*domain.Thought
	Friends  []*domain.User
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type UpdateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
