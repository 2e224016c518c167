package thought

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"social_server/adapter/out/memory"
	"social_server/core/domain"
	"social_server/core/port/in"
	"social_server/core/port/out"
	"social_server/pkg/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedUser(t *testing.T, store *memory.Store, username string) primitive.ObjectID {
	t.Helper()
	u := &domain.User{
		ID:       primitive.NewObjectID(),
		Username: username,
		Email:    username + "@example.com",
		Thoughts: []primitive.ObjectID{},
		Friends:  []primitive.ObjectID{},
	}
	if err := store.Users().Create(context.Background(), u); err != nil {
		t.Fatalf("seed user %q: %v", username, err)
	}
	return u.ID
}

// TestCreateThought tests creation, the username snapshot and the link
// back into the author's reference list.
func TestCreateThought(t *testing.T) {
	store := memory.NewStore()
	svc := NewService(store.Thoughts(), store.Users())
	ctx := context.Background()
	adaID := seedUser(t, store, "ada")

	th, err := svc.CreateThought(ctx, &in.CreateThoughtRequest{
		ThoughtText: "here's a cool thought...",
		UserID:      adaID,
	})
	if err != nil {
		t.Fatalf("CreateThought failed: %v", err)
	}

	if th.Username != "ada" {
		t.Errorf("username snapshot = %q, want %q", th.Username, "ada")
	}
	if th.UserID != adaID {
		t.Errorf("userId = %s, want %s", th.UserID.Hex(), adaID.Hex())
	}
	if th.CreatedAt.IsZero() {
		t.Error("createdAt not set")
	}
	if len(th.Reactions) != 0 {
		t.Errorf("new thought should have no reactions, got %d", len(th.Reactions))
	}

	ada, _ := store.Users().GetByID(ctx, adaID)
	if len(ada.Thoughts) != 1 || ada.Thoughts[0] != th.ID {
		t.Errorf("thought id not linked into author's list: %v", ada.Thoughts)
	}
}

// TestCreateThoughtUnknownUser tests that the author must exist.
func TestCreateThoughtUnknownUser(t *testing.T) {
	store := memory.NewStore()
	svc := NewService(store.Thoughts(), store.Users())

	_, err := svc.CreateThought(context.Background(), &in.CreateThoughtRequest{
		ThoughtText: "orphan",
		UserID:      primitive.NewObjectID(),
	})
	if appErr := apperr.AsAppError(err); appErr.Code != apperr.CodeNotFound {
		t.Fatalf("expected %s, got %v", apperr.CodeNotFound, err)
	}

	// Nothing may be stored when the author lookup fails.
	thoughts, _ := store.Thoughts().List(context.Background())
	if len(thoughts) != 0 {
		t.Errorf("expected no stored thoughts, got %d", len(thoughts))
	}
}

// TestThoughtTextBounds tests the 1..280 length rule on create and update.
func TestThoughtTextBounds(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantCode string
	}{
		{name: "empty text is rejected", text: "", wantCode: apperr.CodeMissingField},
		{name: "one character is accepted", text: "x", wantCode: ""},
		{name: "280 characters is accepted", text: strings.Repeat("a", 280), wantCode: ""},
		{name: "281 characters is rejected", text: strings.Repeat("a", 281), wantCode: apperr.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewStore()
			svc := NewService(store.Thoughts(), store.Users())
			adaID := seedUser(t, store, "ada")

			_, err := svc.CreateThought(context.Background(), &in.CreateThoughtRequest{
				ThoughtText: tt.text,
				UserID:      adaID,
			})
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("expected success, got %v", err)
				}
				return
			}
			if appErr := apperr.AsAppError(err); appErr.Code != tt.wantCode {
				t.Fatalf("expected %s, got %v", tt.wantCode, err)
			}
		})
	}
}

// failingLinkRepo simulates the author vanishing between the thought
// insert and the reference-list update.
type failingLinkRepo struct {
	out.UserRepository
}

func (r *failingLinkRepo) AddThought(ctx context.Context, userID, thoughtID primitive.ObjectID) (*domain.User, error) {
	return nil, nil
}

// TestCreateThoughtLinkFailed tests the distinct partial-write state.
func TestCreateThoughtLinkFailed(t *testing.T) {
	store := memory.NewStore()
	svc := NewService(store.Thoughts(), &failingLinkRepo{UserRepository: store.Users()})
	adaID := seedUser(t, store, "ada")

	_, err := svc.CreateThought(context.Background(), &in.CreateThoughtRequest{
		ThoughtText: "half written",
		UserID:      adaID,
	})
	appErr := apperr.AsAppError(err)
	if appErr.Code != apperr.CodeThoughtLinkFailed {
		t.Errorf("code = %s, want %s", appErr.Code, apperr.CodeThoughtLinkFailed)
	}
	if appErr.Status != http.StatusNotFound {
		t.Errorf("status = %d, want %d", appErr.Status, http.StatusNotFound)
	}

	// The thought itself stays stored.
	thoughts, _ := store.Thoughts().List(context.Background())
	if len(thoughts) != 1 {
		t.Errorf("expected the stored thought to survive, got %d", len(thoughts))
	}
}

// TestUpdateThought tests text replacement and its edge cases.
func TestUpdateThought(t *testing.T) {
	store := memory.NewStore()
	svc := NewService(store.Thoughts(), store.Users())
	ctx := context.Background()
	adaID := seedUser(t, store, "ada")

	th, err := svc.CreateThought(ctx, &in.CreateThoughtRequest{ThoughtText: "draft", UserID: adaID})
	if err != nil {
		t.Fatalf("CreateThought failed: %v", err)
	}

	t.Run("replaces the text", func(t *testing.T) {
		updated, err := svc.UpdateThought(ctx, th.ID, "final")
		if err != nil {
			t.Fatalf("UpdateThought failed: %v", err)
		}
		if updated.ThoughtText != "final" {
			t.Errorf("thoughtText = %q, want %q", updated.ThoughtText, "final")
		}
		if updated.Username != "ada" || updated.CreatedAt.IsZero() {
			t.Error("unrelated fields should be untouched")
		}
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		_, err := svc.UpdateThought(ctx, primitive.NewObjectID(), "final")
		if appErr := apperr.AsAppError(err); appErr.Code != apperr.CodeNotFound {
			t.Fatalf("expected %s, got %v", apperr.CodeNotFound, err)
		}
	})

	t.Run("over-long text is rejected", func(t *testing.T) {
		_, err := svc.UpdateThought(ctx, th.ID, strings.Repeat("a", 281))
		if appErr := apperr.AsAppError(err); appErr.Code != apperr.CodeInvalidInput {
			t.Fatalf("expected %s, got %v", apperr.CodeInvalidInput, err)
		}
	})
}

// TestDeleteThought tests removal plus the pull from reference lists.
func TestDeleteThought(t *testing.T) {
	store := memory.NewStore()
	svc := NewService(store.Thoughts(), store.Users())
	ctx := context.Background()
	adaID := seedUser(t, store, "ada")

	th, err := svc.CreateThought(ctx, &in.CreateThoughtRequest{ThoughtText: "fleeting", UserID: adaID})
	if err != nil {
		t.Fatalf("CreateThought failed: %v", err)
	}

	if err := svc.DeleteThought(ctx, th.ID); err != nil {
		t.Fatalf("DeleteThought failed: %v", err)
	}

	if got, _ := store.Thoughts().GetByID(ctx, th.ID); got != nil {
		t.Error("thought still present after delete")
	}
	ada, _ := store.Users().GetByID(ctx, adaID)
	if len(ada.Thoughts) != 0 {
		t.Errorf("thought id still referenced by author: %v", ada.Thoughts)
	}

	if err := svc.DeleteThought(ctx, th.ID); err == nil {
		t.Error("second delete should report not found")
	}
}

// TestListThoughtsNewestFirst tests the collection sort order.
func TestListThoughtsNewestFirst(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	older := &domain.Thought{
		ID:          primitive.NewObjectID(),
		ThoughtText: "older",
		Username:    "ada",
		CreatedAt:   time.Now().Add(-time.Hour),
		Reactions:   []domain.Reaction{},
	}
	newer := &domain.Thought{
		ID:          primitive.NewObjectID(),
		ThoughtText: "newer",
		Username:    "ada",
		CreatedAt:   time.Now(),
		Reactions:   []domain.Reaction{},
	}
	for _, th := range []*domain.Thought{older, newer} {
		if err := store.Thoughts().Create(ctx, th); err != nil {
			t.Fatalf("seed thought: %v", err)
		}
	}

	svc := NewService(store.Thoughts(), store.Users())
	thoughts, err := svc.ListThoughts(ctx)
	if err != nil {
		t.Fatalf("ListThoughts failed: %v", err)
	}
	if len(thoughts) != 2 || thoughts[0].ID != newer.ID || thoughts[1].ID != older.ID {
		t.Errorf("expected newest first, got %+v", thoughts)
	}
}
