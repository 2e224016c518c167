package reaction

import (
	"context"
	"fmt"
	"time"

	"social_server/core/domain"
	"social_server/core/port/in"
	"social_server/core/port/out"
	"social_server/pkg/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service implements in.ReactionService
type Service struct {
	thoughtRepo out.ThoughtRepository
	userRepo    out.UserRepository
}

// NewService creates a new ReactionService
func NewService(thoughtRepo out.ThoughtRepository, userRepo out.UserRepository) in.ReactionService {
	return &Service{
		thoughtRepo: thoughtRepo,
		userRepo:    userRepo,
	}
}

func (s *Service) CreateReaction(ctx context.Context, thoughtID primitive.ObjectID, req *in.CreateReactionRequest) (*domain.Thought, error) {
	if err := validateReactionBody(req.ReactionBody); err != nil {
		return nil, err
	}

	thought, err := s.thoughtRepo.GetByID(ctx, thoughtID)
	if err != nil {
		return nil, apperr.DatabaseError("get thought", err)
	}
	if thought == nil {
		return nil, apperr.NotFound("thought")
	}

	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, apperr.DatabaseError("get user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user")
	}

	reaction := &domain.Reaction{
		ID:           primitive.NewObjectID(),
		ReactionBody: req.ReactionBody,
		Username:     user.Username,
		CreatedAt:    time.Now(),
	}

	// Set-insert on the embedded array: an element equal to the full
	// composed document is not added twice.
	updated, err := s.thoughtRepo.AddReaction(ctx, thoughtID, reaction)
	if err != nil {
		return nil, apperr.DatabaseError("add reaction", err)
	}
	if updated == nil {
		return nil, apperr.NotFound("thought")
	}
	return updated, nil
}

func (s *Service) GetReaction(ctx context.Context, reactionID primitive.ObjectID) (*domain.Reaction, error) {
	thought, err := s.thoughtRepo.GetByReactionID(ctx, reactionID)
	if err != nil {
		return nil, apperr.DatabaseError("find reaction", err)
	}
	if thought == nil {
		return nil, apperr.NotFound("reaction")
	}

	reaction := thought.FindReaction(reactionID)
	if reaction == nil {
		return nil, apperr.NotFound("reaction")
	}
	return reaction, nil
}

func (s *Service) UpdateReaction(ctx context.Context, reactionID primitive.ObjectID, body string) (*domain.Thought, error) {
	if err := validateReactionBody(body); err != nil {
		return nil, err
	}

	thought, err := s.thoughtRepo.UpdateReactionBody(ctx, reactionID, body)
	if err != nil {
		return nil, apperr.DatabaseError("update reaction", err)
	}
	if thought == nil {
		return nil, apperr.NotFound("reaction")
	}
	return thought, nil
}

func (s *Service) DeleteReaction(ctx context.Context, thoughtID, reactionID primitive.ObjectID) (*domain.Thought, error) {
	// A reaction absent from an existing thought is not an error; the pull
	// leaves the array unchanged and the update still succeeds.
	thought, err := s.thoughtRepo.RemoveReaction(ctx, thoughtID, reactionID)
	if err != nil {
		return nil, apperr.DatabaseError("remove reaction", err)
	}
	if thought == nil {
		return nil, apperr.NotFound("thought")
	}
	return thought, nil
}

func validateReactionBody(body string) error {
	if body == "" {
		return apperr.MissingField("reactionBody")
	}
	if !domain.ValidReactionBody(body) {
		return apperr.InvalidInput("reactionBody",
			fmt.Sprintf("must be between 1 and %d characters", domain.MaxReactionBodyLen))
	}
	return nil
}
