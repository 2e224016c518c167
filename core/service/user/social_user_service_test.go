package user

import (
	"context"
	"net/http"
	"testing"

	"social_server/adapter/out/memory"
	"social_server/core/port/in"
	"social_server/core/service/thought"
	"social_server/pkg/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestService() (in.UserService, in.ThoughtService, *memory.Store) {
	store := memory.NewStore()
	return NewService(store.Users(), store.Thoughts()),
		thought.NewService(store.Thoughts(), store.Users()),
		store
}

func mustCreateUser(t *testing.T, svc in.UserService, username, email string) primitive.ObjectID {
	t.Helper()
	u, err := svc.CreateUser(context.Background(), &in.CreateUserRequest{Username: username, Email: email})
	if err != nil {
		t.Fatalf("CreateUser(%q) failed: %v", username, err)
	}
	return u.ID
}

// TestCreateUserValidation tests field validation on user creation.
func TestCreateUserValidation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		wantCode string
	}{
		{
			name:     "empty username is rejected",
			username: "",
			email:    "ada@example.com",
			wantCode: apperr.CodeMissingField,
		},
		{
			name:     "whitespace-only username is rejected",
			username: "   ",
			email:    "ada@example.com",
			wantCode: apperr.CodeMissingField,
		},
		{
			name:     "empty email is rejected",
			username: "ada",
			email:    "",
			wantCode: apperr.CodeMissingField,
		},
		{
			name:     "email without @ is rejected",
			username: "ada",
			email:    "ada.example.com",
			wantCode: apperr.CodeInvalidInput,
		},
		{
			name:     "email without dot in domain is rejected",
			username: "ada",
			email:    "ada@example",
			wantCode: apperr.CodeInvalidInput,
		},
		{
			name:     "well-formed email is accepted",
			username: "ada",
			email:    "ada@example.com",
			wantCode: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestService()
			_, err := svc.CreateUser(context.Background(), &in.CreateUserRequest{
				Username: tt.username,
				Email:    tt.email,
			})

			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("expected success, got %v", err)
				}
				return
			}
			appErr := apperr.AsAppError(err)
			if appErr.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", appErr.Code, tt.wantCode)
			}
		})
	}
}

// TestCreateUserTrimsUsername tests that surrounding whitespace is stripped.
func TestCreateUserTrimsUsername(t *testing.T) {
	svc, _, _ := newTestService()

	u, err := svc.CreateUser(context.Background(), &in.CreateUserRequest{
		Username: "  ada  ",
		Email:    "ada@example.com",
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if u.Username != "ada" {
		t.Errorf("username = %q, want %q", u.Username, "ada")
	}
	if len(u.Thoughts) != 0 || len(u.Friends) != 0 {
		t.Errorf("new user should start with empty thought and friend lists")
	}
}

// TestCreateUserDuplicate tests that unique-key violations surface as
// database errors.
func TestCreateUserDuplicate(t *testing.T) {
	svc, _, _ := newTestService()
	mustCreateUser(t, svc, "ada", "ada@example.com")

	_, err := svc.CreateUser(context.Background(), &in.CreateUserRequest{
		Username: "ada",
		Email:    "other@example.com",
	})
	appErr := apperr.AsAppError(err)
	if appErr.Code != apperr.CodeDatabaseError {
		t.Errorf("code = %s, want %s", appErr.Code, apperr.CodeDatabaseError)
	}
	if appErr.Status != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", appErr.Status, http.StatusInternalServerError)
	}
}

// TestGetUserRoundTrip tests that a created user is retrievable with
// resolved thoughts and friends.
func TestGetUserRoundTrip(t *testing.T) {
	svc, thoughtSvc, store := newTestService()
	ctx := context.Background()

	adaID := mustCreateUser(t, svc, "ada", "ada@example.com")
	graceID := mustCreateUser(t, svc, "grace", "grace@example.com")

	th, err := thoughtSvc.CreateThought(ctx, &in.CreateThoughtRequest{
		ThoughtText: "here's a cool thought...",
		UserID:      adaID,
	})
	if err != nil {
		t.Fatalf("CreateThought failed: %v", err)
	}
	if _, err := store.Users().AddFriend(ctx, adaID, graceID); err != nil {
		t.Fatalf("AddFriend failed: %v", err)
	}

	detail, err := svc.GetUser(ctx, adaID)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if detail.User.Username != "ada" {
		t.Errorf("username = %q, want %q", detail.User.Username, "ada")
	}
	if len(detail.Thoughts) != 1 || detail.Thoughts[0].ID != th.ID {
		t.Fatalf("expected one resolved thought %s, got %+v", th.ID.Hex(), detail.Thoughts)
	}
	if detail.Thoughts[0].ThoughtText != "here's a cool thought..." {
		t.Errorf("thoughtText = %q", detail.Thoughts[0].ThoughtText)
	}
	if len(detail.Friends) != 1 || detail.Friends[0].Username != "grace" {
		t.Errorf("expected grace as the sole resolved friend, got %+v", detail.Friends)
	}
}

// TestGetUserNotFound tests the 404 on unknown ids.
func TestGetUserNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetUser(context.Background(), primitive.NewObjectID())
	appErr := apperr.AsAppError(err)
	if appErr.Code != apperr.CodeNotFound {
		t.Fatalf("expected %s, got %v", apperr.CodeNotFound, err)
	}
	if appErr.Status != http.StatusNotFound {
		t.Errorf("status = %d, want %d", appErr.Status, http.StatusNotFound)
	}
}

// TestListUsersResolvesThoughts tests that the list view carries each
// user's thoughts in reference-list order.
func TestListUsersResolvesThoughts(t *testing.T) {
	svc, thoughtSvc, _ := newTestService()
	ctx := context.Background()

	adaID := mustCreateUser(t, svc, "ada", "ada@example.com")
	mustCreateUser(t, svc, "grace", "grace@example.com")

	first, err := thoughtSvc.CreateThought(ctx, &in.CreateThoughtRequest{ThoughtText: "first", UserID: adaID})
	if err != nil {
		t.Fatalf("CreateThought failed: %v", err)
	}
	second, err := thoughtSvc.CreateThought(ctx, &in.CreateThoughtRequest{ThoughtText: "second", UserID: adaID})
	if err != nil {
		t.Fatalf("CreateThought failed: %v", err)
	}

	details, err := svc.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("expected 2 users, got %d", len(details))
	}

	var ada *in.UserDetail
	for _, d := range details {
		if d.User.Username == "ada" {
			ada = d
		}
	}
	if ada == nil {
		t.Fatal("ada missing from list")
	}
	if len(ada.Thoughts) != 2 || ada.Thoughts[0].ID != first.ID || ada.Thoughts[1].ID != second.ID {
		t.Errorf("thoughts not resolved in reference order: %+v", ada.Thoughts)
	}
}

// TestUpdateUser tests field replacement and the unknown-id case.
func TestUpdateUser(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	adaID := mustCreateUser(t, svc, "ada", "ada@example.com")

	t.Run("updates username and email", func(t *testing.T) {
		updated, err := svc.UpdateUser(ctx, adaID, &in.UpdateUserRequest{
			Username: "countess",
			Email:    "countess@example.com",
		})
		if err != nil {
			t.Fatalf("UpdateUser failed: %v", err)
		}
		if updated.Username != "countess" || updated.Email != "countess@example.com" {
			t.Errorf("got %q / %q", updated.Username, updated.Email)
		}
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		_, err := svc.UpdateUser(ctx, primitive.NewObjectID(), &in.UpdateUserRequest{
			Username: "nobody",
			Email:    "nobody@example.com",
		})
		if appErr := apperr.AsAppError(err); appErr.Code != apperr.CodeNotFound {
			t.Fatalf("expected %s, got %v", apperr.CodeNotFound, err)
		}
	})

	t.Run("invalid email is rejected", func(t *testing.T) {
		_, err := svc.UpdateUser(ctx, adaID, &in.UpdateUserRequest{
			Username: "ada",
			Email:    "not-an-email",
		})
		if appErr := apperr.AsAppError(err); appErr.Code != apperr.CodeInvalidInput {
			t.Fatalf("expected %s, got %v", apperr.CodeInvalidInput, err)
		}
	})
}

// TestDeleteUserCascade tests that deleting a user removes their
// thoughts and drops them from every friend list.
func TestDeleteUserCascade(t *testing.T) {
	svc, thoughtSvc, store := newTestService()
	ctx := context.Background()

	adaID := mustCreateUser(t, svc, "ada", "ada@example.com")
	graceID := mustCreateUser(t, svc, "grace", "grace@example.com")

	th, err := thoughtSvc.CreateThought(ctx, &in.CreateThoughtRequest{ThoughtText: "soon gone", UserID: adaID})
	if err != nil {
		t.Fatalf("CreateThought failed: %v", err)
	}
	if _, err := store.Users().AddFriend(ctx, graceID, adaID); err != nil {
		t.Fatalf("AddFriend failed: %v", err)
	}

	if err := svc.DeleteUser(ctx, adaID); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}

	if got, _ := store.Users().GetByID(ctx, adaID); got != nil {
		t.Error("user still present after delete")
	}
	if got, _ := store.Thoughts().GetByID(ctx, th.ID); got != nil {
		t.Error("thought still present after user delete")
	}
	grace, _ := store.Users().GetByID(ctx, graceID)
	if grace.HasFriend(adaID) {
		t.Error("deleted user still listed as a friend")
	}
}

// TestDeleteUserNotFound tests deleting an unknown user.
func TestDeleteUserNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.DeleteUser(context.Background(), primitive.NewObjectID())
	if appErr := apperr.AsAppError(err); appErr.Code != apperr.CodeNotFound {
		t.Fatalf("expected %s, got %v", apperr.CodeNotFound, err)
	}
}
