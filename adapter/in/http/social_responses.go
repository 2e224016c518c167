package http

import (
	"social_server/core/domain"
	"social_server/core/port/in"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// createdAtLayout is the locale-style timestamp rendering used in every
// response payload, e.g. "1/2/2006, 3:04:05 PM".
const createdAtLayout = "1/2/2006, 3:04:05 PM"

// UserResponse renders a user with its reference lists as id strings.
type UserResponse struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	Thoughts     []string `json:"thoughts"`
	Friends      []string `json:"friends"`
	FriendsCount int      `json:"friendsCount"`
}

// UserListResponse renders a user with thoughts resolved and friends as
// id strings, the shape of the unbounded list endpoint.
type UserListResponse struct {
	ID           string             `json:"id"`
	Username     string             `json:"username"`
	Email        string             `json:"email"`
	Thoughts     []*ThoughtResponse `json:"thoughts"`
	Friends      []string           `json:"friends"`
	FriendsCount int                `json:"friendsCount"`
}

// UserDetailResponse renders a user with thoughts and friends fully
// resolved.
type UserDetailResponse struct {
	ID           string             `json:"id"`
	Username     string             `json:"username"`
	Email        string             `json:"email"`
	Thoughts     []*ThoughtResponse `json:"thoughts"`
	Friends      []*UserResponse    `json:"friends"`
	FriendsCount int                `json:"friendsCount"`
}

// ThoughtResponse renders a thought with its embedded reactions.
type ThoughtResponse struct {
	ID            string              `json:"id"`
	ThoughtText   string              `json:"thoughtText"`
	Username      string              `json:"username"`
	UserID        string              `json:"userId"`
	CreatedAt     string              `json:"createdAt"`
	Reactions     []*ReactionResponse `json:"reactions"`
	ReactionCount int                 `json:"reactionCount"`
}

// ReactionResponse renders one embedded reaction.
type ReactionResponse struct {
	ReactionID   string `json:"reactionId"`
	ReactionBody string `json:"reactionBody"`
	Username     string `json:"username"`
	CreatedAt    string `json:"createdAt"`
}

func toUserResponse(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:           u.ID.Hex(),
		Username:     u.Username,
		Email:        u.Email,
		Thoughts:     hexIDs(u.Thoughts),
		Friends:      hexIDs(u.Friends),
		FriendsCount: u.FriendsCount(),
	}
}

func toUserListResponse(d *in.UserDetail) *UserListResponse {
	return &UserListResponse{
		ID:           d.User.ID.Hex(),
		Username:     d.User.Username,
		Email:        d.User.Email,
		Thoughts:     toThoughtResponses(d.Thoughts),
		Friends:      hexIDs(d.User.Friends),
		FriendsCount: d.User.FriendsCount(),
	}
}

func toUserDetailResponse(d *in.UserDetail) *UserDetailResponse {
	friends := make([]*UserResponse, 0, len(d.Friends))
	for _, f := range d.Friends {
		friends = append(friends, toUserResponse(f))
	}
	return &UserDetailResponse{
		ID:           d.User.ID.Hex(),
		Username:     d.User.Username,
		Email:        d.User.Email,
		Thoughts:     toThoughtResponses(d.Thoughts),
		Friends:      friends,
		FriendsCount: d.User.FriendsCount(),
	}
}

func toThoughtResponse(t *domain.Thought) *ThoughtResponse {
	reactions := make([]*ReactionResponse, 0, len(t.Reactions))
	for i := range t.Reactions {
		reactions = append(reactions, toReactionResponse(&t.Reactions[i]))
	}
	return &ThoughtResponse{
		ID:            t.ID.Hex(),
		ThoughtText:   t.ThoughtText,
		Username:      t.Username,
		UserID:        t.UserID.Hex(),
		CreatedAt:     t.CreatedAt.Format(createdAtLayout),
		Reactions:     reactions,
		ReactionCount: t.ReactionCount(),
	}
}

func toThoughtResponses(thoughts []*domain.Thought) []*ThoughtResponse {
	responses := make([]*ThoughtResponse, 0, len(thoughts))
	for _, t := range thoughts {
		responses = append(responses, toThoughtResponse(t))
	}
	return responses
}

func toReactionResponse(r *domain.Reaction) *ReactionResponse {
	return &ReactionResponse{
		ReactionID:   r.ID.Hex(),
		ReactionBody: r.ReactionBody,
		Username:     r.Username,
		CreatedAt:    r.CreatedAt.Format(createdAtLayout),
	}
}

func hexIDs(ids []primitive.ObjectID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Hex())
	}
	return out
}
