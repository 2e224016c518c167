package http

import (
	"social_server/pkg/apperr"
	"social_server/pkg/objectid"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// paramObjectID reads a path parameter and validates it as a document
// identifier. The error names the offending field.
func paramObjectID(c *fiber.Ctx, name string) (primitive.ObjectID, error) {
	return parseObjectID(name, c.Params(name))
}

// parseObjectID validates a request-supplied identifier field.
func parseObjectID(field, value string) (primitive.ObjectID, error) {
	if value == "" {
		return primitive.NilObjectID, apperr.MissingField(field)
	}
	if !objectid.IsValid(value) {
		return primitive.NilObjectID, apperr.InvalidInput(field, "it should be a valid ObjectId")
	}
	id, err := objectid.Parse(value)
	if err != nil {
		return primitive.NilObjectID, apperr.InvalidInput(field, "it should be a valid ObjectId")
	}
	return id, nil
}
