package domain

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// emailPattern requires local@domain.tld with at least one dot after the @.
var emailPattern = regexp.MustCompile(`^.+@.+\..+$`)

// User represents a registered account. Thoughts and friends hold
// references only; the documents live in their own collections.
type User struct {
	ID       primitive.ObjectID   `json:"id"`
	Username string               `json:"username"`
	Email    string               `json:"email"`
	Thoughts []primitive.ObjectID `json:"thoughts"`
	Friends  []primitive.ObjectID `json:"friends"`
}

// FriendsCount returns the number of friends the user holds.
func (u *User) FriendsCount() int {
	return len(u.Friends)
}

// HasFriend reports whether friendID is already in the friend list.
func (u *User) HasFriend(friendID primitive.ObjectID) bool {
	for _, id := range u.Friends {
		if id == friendID {
			return true
		}
	}
	return false
}

// NormalizeUsername trims surrounding whitespace, matching the stored form.
func NormalizeUsername(username string) string {
	return strings.TrimSpace(username)
}

// IsValidEmail reports whether the address matches local@domain.tld.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
