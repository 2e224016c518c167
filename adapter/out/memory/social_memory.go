// Package memory implements the repository ports in process memory.
// It mirrors the document store's update semantics (set-insert, pull,
// unique username/email keys) and backs the service tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"social_server/core/domain"
	"social_server/core/port/out"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store holds users and thoughts behind both repository interfaces.
type Store struct {
	mu        sync.Mutex
	users     map[primitive.ObjectID]*domain.User
	userOrder []primitive.ObjectID
	thoughts  map[primitive.ObjectID]*domain.Thought
}

func NewStore() *Store {
	return &Store{
		users:    make(map[primitive.ObjectID]*domain.User),
		thoughts: make(map[primitive.ObjectID]*domain.Thought),
	}
}

// Users returns the store as a UserRepository.
func (s *Store) Users() out.UserRepository { return (*userStore)(s) }

// Thoughts returns the store as a ThoughtRepository.
func (s *Store) Thoughts() out.ThoughtRepository { return (*thoughtStore)(s) }

type userStore Store

func (s *userStore) List(ctx context.Context) ([]*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]*domain.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		users = append(users, cloneUser(s.users[id]))
	}
	return users, nil
}

func (s *userStore) ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := []*domain.User{}
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			users = append(users, cloneUser(u))
		}
	}
	return users, nil
}

func (s *userStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return cloneUser(u), nil
}

func (s *userStore) Create(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Unique-index behavior on username and email.
	for _, existing := range s.users {
		if existing.Username == user.Username {
			return fmt.Errorf("duplicate key: username %q", user.Username)
		}
		if existing.Email == user.Email {
			return fmt.Errorf("duplicate key: email %q", user.Email)
		}
	}

	s.users[user.ID] = cloneUser(user)
	s.userOrder = append(s.userOrder, user.ID)
	return nil
}

func (s *userStore) Update(ctx context.Context, id primitive.ObjectID, username, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	u.Username = username
	u.Email = email
	return cloneUser(u), nil
}

func (s *userStore) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return false, nil
	}
	delete(s.users, id)
	for i, uid := range s.userOrder {
		if uid == id {
			s.userOrder = append(s.userOrder[:i], s.userOrder[i+1:]...)
			break
		}
	}
	return true, nil
}

func (s *userStore) AddFriend(ctx context.Context, userID, friendID primitive.ObjectID) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	u.Friends = addToSet(u.Friends, friendID)
	return cloneUser(u), nil
}

func (s *userStore) RemoveFriend(ctx context.Context, userID, friendID primitive.ObjectID) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	u.Friends = pull(u.Friends, friendID)
	return cloneUser(u), nil
}

func (s *userStore) PullFriendFromAll(ctx context.Context, friendID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		u.Friends = pull(u.Friends, friendID)
	}
	return nil
}

func (s *userStore) AddThought(ctx context.Context, userID, thoughtID primitive.ObjectID) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	u.Thoughts = addToSet(u.Thoughts, thoughtID)
	return cloneUser(u), nil
}

func (s *userStore) PullThoughtFromAll(ctx context.Context, thoughtID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		u.Thoughts = pull(u.Thoughts, thoughtID)
	}
	return nil
}

type thoughtStore Store

func (s *thoughtStore) List(ctx context.Context) ([]*domain.Thought, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	thoughts := make([]*domain.Thought, 0, len(s.thoughts))
	for _, t := range s.thoughts {
		thoughts = append(thoughts, cloneThought(t))
	}
	// Newest first, matching the collection sort.
	sort.Slice(thoughts, func(i, j int) bool {
		return thoughts[i].CreatedAt.After(thoughts[j].CreatedAt)
	})
	return thoughts, nil
}

func (s *thoughtStore) ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.Thought, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	thoughts := []*domain.Thought{}
	for _, id := range ids {
		if t, ok := s.thoughts[id]; ok {
			thoughts = append(thoughts, cloneThought(t))
		}
	}
	return thoughts, nil
}

func (s *thoughtStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Thought, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.thoughts[id]
	if !ok {
		return nil, nil
	}
	return cloneThought(t), nil
}

func (s *thoughtStore) GetByReactionID(ctx context.Context, reactionID primitive.ObjectID) (*domain.Thought, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.thoughts {
		if t.FindReaction(reactionID) != nil {
			return cloneThought(t), nil
		}
	}
	return nil, nil
}

func (s *thoughtStore) Create(ctx context.Context, thought *domain.Thought) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.thoughts[thought.ID] = cloneThought(thought)
	return nil
}

func (s *thoughtStore) UpdateText(ctx context.Context, id primitive.ObjectID, text string) (*domain.Thought, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.thoughts[id]
	if !ok {
		return nil, nil
	}
	t.ThoughtText = text
	return cloneThought(t), nil
}

func (s *thoughtStore) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.thoughts[id]; !ok {
		return false, nil
	}
	delete(s.thoughts, id)
	return true, nil
}

func (s *thoughtStore) DeleteByUsername(ctx context.Context, username string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for id, t := range s.thoughts {
		if t.Username == username {
			delete(s.thoughts, id)
			deleted++
		}
	}
	return deleted, nil
}

func (s *thoughtStore) AddReaction(ctx context.Context, thoughtID primitive.ObjectID, reaction *domain.Reaction) (*domain.Thought, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.thoughts[thoughtID]
	if !ok {
		return nil, nil
	}
	// Set-insert keyed on full value equality.
	for _, existing := range t.Reactions {
		if existing == *reaction {
			return cloneThought(t), nil
		}
	}
	t.Reactions = append(t.Reactions, *reaction)
	return cloneThought(t), nil
}

func (s *thoughtStore) RemoveReaction(ctx context.Context, thoughtID, reactionID primitive.ObjectID) (*domain.Thought, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.thoughts[thoughtID]
	if !ok {
		return nil, nil
	}
	kept := t.Reactions[:0]
	for _, r := range t.Reactions {
		if r.ID != reactionID {
			kept = append(kept, r)
		}
	}
	t.Reactions = kept
	return cloneThought(t), nil
}

func (s *thoughtStore) UpdateReactionBody(ctx context.Context, reactionID primitive.ObjectID, body string) (*domain.Thought, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.thoughts {
		if r := t.FindReaction(reactionID); r != nil {
			r.ReactionBody = body
			return cloneThought(t), nil
		}
	}
	return nil, nil
}

func addToSet(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

func pull(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	kept := ids[:0]
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	return kept
}

func cloneUser(u *domain.User) *domain.User {
	c := *u
	c.Thoughts = append([]primitive.ObjectID{}, u.Thoughts...)
	c.Friends = append([]primitive.ObjectID{}, u.Friends...)
	return &c
}

func cloneThought(t *domain.Thought) *domain.Thought {
	c := *t
	c.Reactions = append([]domain.Reaction{}, t.Reactions...)
	return &c
}

var (
	_ out.UserRepository    = (*userStore)(nil)
	_ out.ThoughtRepository = (*thoughtStore)(nil)
)
