package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// MaxThoughtTextLen is the upper bound on thought text length.
	MaxThoughtTextLen = 280
	// MaxReactionBodyLen is the upper bound on reaction body length.
	MaxReactionBodyLen = 280
)

// Thought is a posted message. Username is a snapshot of the author's
// username at creation time and is not kept in sync with later renames.
type Thought struct {
	ID          primitive.ObjectID `json:"id"`
	ThoughtText string             `json:"thoughtText"`
	Username    string             `json:"username"`
	UserID      primitive.ObjectID `json:"userId"`
	CreatedAt   time.Time          `json:"createdAt"`
	Reactions   []Reaction         `json:"reactions"`
}

// ReactionCount returns the number of embedded reactions.
func (t *Thought) ReactionCount() int {
	return len(t.Reactions)
}

// FindReaction returns the embedded reaction with the given id, or nil.
func (t *Thought) FindReaction(reactionID primitive.ObjectID) *Reaction {
	for i := range t.Reactions {
		if t.Reactions[i].ID == reactionID {
			return &t.Reactions[i]
		}
	}
	return nil
}

// Reaction is embedded in its parent thought and has no independent
// lifecycle. Username is snapshotted like Thought.Username.
type Reaction struct {
	ID           primitive.ObjectID `json:"reactionId"`
	ReactionBody string             `json:"reactionBody"`
	Username     string             `json:"username"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// ValidThoughtText reports whether text is within the 1..280 length bounds.
func ValidThoughtText(text string) bool {
	return len(text) >= 1 && len(text) <= MaxThoughtTextLen
}

// ValidReactionBody reports whether body is non-empty and at most 280 chars.
func ValidReactionBody(body string) bool {
	return len(body) >= 1 && len(body) <= MaxReactionBodyLen
}
