package mongodb

import (
	"context"
	"errors"
	"fmt"

	"social_server/core/domain"
	"social_server/core/port/out"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionUsers = "users"

// UserAdapter implements out.UserRepository using MongoDB.
type UserAdapter struct {
	collection *mongo.Collection
}

// NewUserAdapter creates a new MongoDB user adapter.
func NewUserAdapter(db *mongo.Database) *UserAdapter {
	return &UserAdapter{collection: db.Collection(collectionUsers)}
}

// EnsureIndexes creates the unique indexes backing the username and email
// invariants.
func (a *UserAdapter) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := a.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

// userDocument represents the MongoDB document structure.
type userDocument struct {
	ID       primitive.ObjectID   `bson:"_id"`
	Username string               `bson:"username"`
	Email    string               `bson:"email"`
	Thoughts []primitive.ObjectID `bson:"thoughts"`
	Friends  []primitive.ObjectID `bson:"friends"`
}

func (a *UserAdapter) List(ctx context.Context) ([]*domain.User, error) {
	return a.find(ctx, bson.M{})
}

func (a *UserAdapter) ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.User, error) {
	if len(ids) == 0 {
		return []*domain.User{}, nil
	}
	return a.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (a *UserAdapter) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	var doc userDocument
	err := a.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toUserEntity(&doc), nil
}

func (a *UserAdapter) Create(ctx context.Context, user *domain.User) error {
	if _, err := a.collection.InsertOne(ctx, toUserDocument(user)); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (a *UserAdapter) Update(ctx context.Context, id primitive.ObjectID, username, email string) (*domain.User, error) {
	update := bson.M{"$set": bson.M{"username": username, "email": email}}
	return a.findOneAndUpdate(ctx, bson.M{"_id": id}, update, "update user")
}

func (a *UserAdapter) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := a.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
	}
	return result.DeletedCount > 0, nil
}

func (a *UserAdapter) AddFriend(ctx context.Context, userID, friendID primitive.ObjectID) (*domain.User, error) {
	update := bson.M{"$addToSet": bson.M{"friends": friendID}}
	return a.findOneAndUpdate(ctx, bson.M{"_id": userID}, update, "add friend")
}

func (a *UserAdapter) RemoveFriend(ctx context.Context, userID, friendID primitive.ObjectID) (*domain.User, error) {
	update := bson.M{"$pull": bson.M{"friends": friendID}}
	return a.findOneAndUpdate(ctx, bson.M{"_id": userID}, update, "remove friend")
}

func (a *UserAdapter) PullFriendFromAll(ctx context.Context, friendID primitive.ObjectID) error {
	filter := bson.M{"friends": friendID}
	update := bson.M{"$pull": bson.M{"friends": friendID}}

	if _, err := a.collection.UpdateMany(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to pull friend from friend lists: %w", err)
	}
	return nil
}

func (a *UserAdapter) AddThought(ctx context.Context, userID, thoughtID primitive.ObjectID) (*domain.User, error) {
	update := bson.M{"$addToSet": bson.M{"thoughts": thoughtID}}
	return a.findOneAndUpdate(ctx, bson.M{"_id": userID}, update, "add thought")
}

func (a *UserAdapter) PullThoughtFromAll(ctx context.Context, thoughtID primitive.ObjectID) error {
	filter := bson.M{"thoughts": thoughtID}
	update := bson.M{"$pull": bson.M{"thoughts": thoughtID}}

	if _, err := a.collection.UpdateMany(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to pull thought from thought lists: %w", err)
	}
	return nil
}

func (a *UserAdapter) find(ctx context.Context, filter bson.M) ([]*domain.User, error) {
	cursor, err := a.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []*domain.User{}
	for cursor.Next(ctx) {
		var doc userDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode user: %w", err)
		}
		users = append(users, toUserEntity(&doc))
	}
	return users, cursor.Err()
}

// findOneAndUpdate applies the update and returns the new document, or
// nil when no document matched.
func (a *UserAdapter) findOneAndUpdate(ctx context.Context, filter, update bson.M, op string) (*domain.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc userDocument
	err := a.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	return toUserEntity(&doc), nil
}

func toUserDocument(user *domain.User) *userDocument {
	return &userDocument{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Thoughts: user.Thoughts,
		Friends:  user.Friends,
	}
}

func toUserEntity(doc *userDocument) *domain.User {
	user := &domain.User{
		ID:       doc.ID,
		Username: doc.Username,
		Email:    doc.Email,
		Thoughts: doc.Thoughts,
		Friends:  doc.Friends,
	}
	if user.Thoughts == nil {
		user.Thoughts = []primitive.ObjectID{}
	}
	if user.Friends == nil {
		user.Friends = []primitive.ObjectID{}
	}
	return user
}

var _ out.UserRepository = (*UserAdapter)(nil)
