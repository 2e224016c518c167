package user

import (
	"context"
	"fmt"

	"social_server/core/domain"
	"social_server/core/port/in"
	"social_server/core/port/out"
	"social_server/pkg/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service implements in.UserService
type Service struct {
	userRepo    out.UserRepository
	thoughtRepo out.ThoughtRepository
}

// NewService creates a new UserService
func NewService(userRepo out.UserRepository, thoughtRepo out.ThoughtRepository) in.UserService {
	return &Service{
		userRepo:    userRepo,
		thoughtRepo: thoughtRepo,
	}
}

func (s *Service) ListUsers(ctx context.Context) ([]*in.UserDetail, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, apperr.DatabaseError("list users", err)
	}

	// Resolve every referenced thought in one query.
	var thoughtIDs []primitive.ObjectID
	for _, u := range users {
		thoughtIDs = append(thoughtIDs, u.Thoughts...)
	}
	thoughtsByID, err := s.thoughtsByID(ctx, thoughtIDs)
	if err != nil {
		return nil, err
	}

	details := make([]*in.UserDetail, 0, len(users))
	for _, u := range users {
		details = append(details, &in.UserDetail{
			User:     u,
			Thoughts: pickThoughts(thoughtsByID, u.Thoughts),
		})
	}
	return details, nil
}

func (s *Service) GetUser(ctx context.Context, id primitive.ObjectID) (*in.UserDetail, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.DatabaseError("get user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user")
	}

	thoughtsByID, err := s.thoughtsByID(ctx, user.Thoughts)
	if err != nil {
		return nil, err
	}

	friends, err := s.userRepo.ListByIDs(ctx, user.Friends)
	if err != nil {
		return nil, apperr.DatabaseError("resolve friends", err)
	}

	return &in.UserDetail{
		User:     user,
		Thoughts: pickThoughts(thoughtsByID, user.Thoughts),
		Friends:  friends,
	}, nil
}

func (s *Service) CreateUser(ctx context.Context, req *in.CreateUserRequest) (*domain.User, error) {
	username, email, err := validateUserFields(req.Username, req.Email)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:       primitive.NewObjectID(),
		Username: username,
		Email:    email,
		Thoughts: []primitive.ObjectID{},
		Friends:  []primitive.ObjectID{},
	}

	// Uniqueness violations surface here as the generic database error;
	// the store's unique indexes on username and email enforce them.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, apperr.DatabaseError("create user", err)
	}
	return user, nil
}

func (s *Service) UpdateUser(ctx context.Context, id primitive.ObjectID, req *in.UpdateUserRequest) (*domain.User, error) {
	username, email, err := validateUserFields(req.Username, req.Email)
	if err != nil {
		return nil, err
	}

	user, updateErr := s.userRepo.Update(ctx, id, username, email)
	if updateErr != nil {
		return nil, apperr.DatabaseError("update user", updateErr)
	}
	if user == nil {
		return nil, apperr.NotFound("user")
	}
	return user, nil
}

func (s *Service) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return apperr.DatabaseError("get user", err)
	}
	if user == nil {
		return apperr.NotFound("user")
	}

	// Cascade, in order: drop the user from every friend list, delete the
	// user's thoughts (matched by username snapshot), then the user itself.
	// Steps are separate writes; a failure leaves earlier steps applied.
	if err := s.userRepo.PullFriendFromAll(ctx, id); err != nil {
		return apperr.DatabaseError("remove user from friend lists", err)
	}
	if _, err := s.thoughtRepo.DeleteByUsername(ctx, user.Username); err != nil {
		return apperr.DatabaseError("delete user thoughts", err)
	}
	if _, err := s.userRepo.Delete(ctx, id); err != nil {
		return apperr.DatabaseError("delete user", err)
	}
	return nil
}

func (s *Service) thoughtsByID(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*domain.Thought, error) {
	thoughts, err := s.thoughtRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, apperr.DatabaseError("resolve thoughts", err)
	}
	byID := make(map[primitive.ObjectID]*domain.Thought, len(thoughts))
	for _, t := range thoughts {
		byID[t.ID] = t
	}
	return byID, nil
}

// pickThoughts preserves the order of the user's reference list. Dangling
// references are skipped.
func pickThoughts(byID map[primitive.ObjectID]*domain.Thought, ids []primitive.ObjectID) []*domain.Thought {
	thoughts := make([]*domain.Thought, 0, len(ids))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			thoughts = append(thoughts, t)
		}
	}
	return thoughts
}

func validateUserFields(username, email string) (string, string, error) {
	username = domain.NormalizeUsername(username)
	if username == "" {
		return "", "", apperr.MissingField("username")
	}
	if email == "" {
		return "", "", apperr.MissingField("email")
	}
	if !domain.IsValidEmail(email) {
		return "", "", apperr.InvalidInput("email", fmt.Sprintf("%q is not a valid email address", email))
	}
	return username, email, nil
}
