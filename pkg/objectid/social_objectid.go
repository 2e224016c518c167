// Package objectid wraps identifier validation for the document store.
package objectid

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IsValid reports whether s is a well-formed document identifier:
// a 24-character hexadecimal string.
func IsValid(s string) bool {
	return primitive.IsValidObjectID(s)
}

// Parse converts s into an ObjectID. Callers are expected to have
// checked IsValid first; Parse reports the error regardless.
func Parse(s string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(s)
}
