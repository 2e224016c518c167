package thought

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"social_server/core/domain"
	"social_server/core/port/in"
	"social_server/core/port/out"
	"social_server/pkg/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service implements in.ThoughtService
type Service struct {
	thoughtRepo out.ThoughtRepository
	userRepo    out.UserRepository
}

// NewService creates a new ThoughtService
func NewService(thoughtRepo out.ThoughtRepository, userRepo out.UserRepository) in.ThoughtService {
	return &Service{
		thoughtRepo: thoughtRepo,
		userRepo:    userRepo,
	}
}

func (s *Service) ListThoughts(ctx context.Context) ([]*domain.Thought, error) {
	thoughts, err := s.thoughtRepo.List(ctx)
	if err != nil {
		return nil, apperr.DatabaseError("list thoughts", err)
	}
	return thoughts, nil
}

func (s *Service) GetThought(ctx context.Context, id primitive.ObjectID) (*domain.Thought, error) {
	thought, err := s.thoughtRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.DatabaseError("get thought", err)
	}
	if thought == nil {
		return nil, apperr.NotFound("thought")
	}
	return thought, nil
}

func (s *Service) CreateThought(ctx context.Context, req *in.CreateThoughtRequest) (*domain.Thought, error) {
	if err := validateThoughtText(req.ThoughtText); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, apperr.DatabaseError("get user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user")
	}

	thought := &domain.Thought{
		ID:          primitive.NewObjectID(),
		ThoughtText: req.ThoughtText,
		Username:    user.Username,
		UserID:      user.ID,
		CreatedAt:   time.Now(),
		Reactions:   []domain.Reaction{},
	}
	if err := s.thoughtRepo.Create(ctx, thought); err != nil {
		return nil, apperr.DatabaseError("create thought", err)
	}

	// Link the new thought into the author's reference list. No
	// cross-document transaction: when this write fails the thought stays
	// stored and the failure is reported as its own state.
	updated, err := s.userRepo.AddThought(ctx, user.ID, thought.ID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeThoughtLinkFailed,
			"thought created but user link failed", http.StatusInternalServerError)
	}
	if updated == nil {
		return nil, apperr.New(apperr.CodeThoughtLinkFailed,
			"thought created but user link failed", http.StatusNotFound)
	}

	return thought, nil
}

func (s *Service) UpdateThought(ctx context.Context, id primitive.ObjectID, text string) (*domain.Thought, error) {
	if err := validateThoughtText(text); err != nil {
		return nil, err
	}

	thought, err := s.thoughtRepo.UpdateText(ctx, id, text)
	if err != nil {
		return nil, apperr.DatabaseError("update thought", err)
	}
	if thought == nil {
		return nil, apperr.NotFound("thought")
	}
	return thought, nil
}

func (s *Service) DeleteThought(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.thoughtRepo.Delete(ctx, id)
	if err != nil {
		return apperr.DatabaseError("delete thought", err)
	}
	if !deleted {
		return apperr.NotFound("thought")
	}

	// Normally one owner, but any user whose list contains the id loses it.
	if err := s.userRepo.PullThoughtFromAll(ctx, id); err != nil {
		return apperr.DatabaseError("remove thought from users", err)
	}
	return nil
}

func validateThoughtText(text string) error {
	if text == "" {
		return apperr.MissingField("thoughtText")
	}
	if !domain.ValidThoughtText(text) {
		return apperr.InvalidInput("thoughtText",
			fmt.Sprintf("must be between 1 and %d characters", domain.MaxThoughtTextLen))
	}
	return nil
}
