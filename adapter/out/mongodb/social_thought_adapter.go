package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"social_server/core/domain"
	"social_server/core/port/out"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionThoughts = "thoughts"

// ThoughtAdapter implements out.ThoughtRepository using MongoDB.
// Reactions live inside thought documents, not in their own collection.
type ThoughtAdapter struct {
	collection *mongo.Collection
}

// NewThoughtAdapter creates a new MongoDB thought adapter.
func NewThoughtAdapter(db *mongo.Database) *ThoughtAdapter {
	return &ThoughtAdapter{collection: db.Collection(collectionThoughts)}
}

// EnsureIndexes creates the lookup indexes for the collection.
func (a *ThoughtAdapter) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "username", Value: 1}},
		},
	}

	_, err := a.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

// thoughtDocument represents the MongoDB document structure.
type thoughtDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	ThoughtText string             `bson:"thoughtText"`
	Username    string             `bson:"username"`
	UserID      primitive.ObjectID `bson:"userId"`
	CreatedAt   time.Time          `bson:"createdAt"`
	Reactions   []reactionDocument `bson:"reactions"`
}

type reactionDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	ReactionBody string             `bson:"reactionBody"`
	Username     string             `bson:"username"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

func (a *ThoughtAdapter) List(ctx context.Context) ([]*domain.Thought, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return a.find(ctx, bson.M{}, opts)
}

func (a *ThoughtAdapter) ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.Thought, error) {
	if len(ids) == 0 {
		return []*domain.Thought{}, nil
	}
	return a.find(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

func (a *ThoughtAdapter) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Thought, error) {
	return a.findOne(ctx, bson.M{"_id": id})
}

func (a *ThoughtAdapter) GetByReactionID(ctx context.Context, reactionID primitive.ObjectID) (*domain.Thought, error) {
	return a.findOne(ctx, bson.M{"reactions._id": reactionID})
}

func (a *ThoughtAdapter) Create(ctx context.Context, thought *domain.Thought) error {
	if _, err := a.collection.InsertOne(ctx, toThoughtDocument(thought)); err != nil {
		return fmt.Errorf("failed to create thought: %w", err)
	}
	return nil
}

func (a *ThoughtAdapter) UpdateText(ctx context.Context, id primitive.ObjectID, text string) (*domain.Thought, error) {
	update := bson.M{"$set": bson.M{"thoughtText": text}}
	return a.findOneAndUpdate(ctx, bson.M{"_id": id}, update, "update thought text")
}

func (a *ThoughtAdapter) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := a.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete thought: %w", err)
	}
	return result.DeletedCount > 0, nil
}

func (a *ThoughtAdapter) DeleteByUsername(ctx context.Context, username string) (int64, error) {
	result, err := a.collection.DeleteMany(ctx, bson.M{"username": username})
	if err != nil {
		return 0, fmt.Errorf("failed to delete thoughts by username: %w", err)
	}
	return result.DeletedCount, nil
}

func (a *ThoughtAdapter) AddReaction(ctx context.Context, thoughtID primitive.ObjectID, reaction *domain.Reaction) (*domain.Thought, error) {
	// $addToSet keys on the full composed document, so only a true
	// full-value collision is suppressed.
	update := bson.M{"$addToSet": bson.M{"reactions": toReactionDocument(reaction)}}
	return a.findOneAndUpdate(ctx, bson.M{"_id": thoughtID}, update, "add reaction")
}

func (a *ThoughtAdapter) RemoveReaction(ctx context.Context, thoughtID, reactionID primitive.ObjectID) (*domain.Thought, error) {
	update := bson.M{"$pull": bson.M{"reactions": bson.M{"_id": reactionID}}}
	return a.findOneAndUpdate(ctx, bson.M{"_id": thoughtID}, update, "remove reaction")
}

func (a *ThoughtAdapter) UpdateReactionBody(ctx context.Context, reactionID primitive.ObjectID, body string) (*domain.Thought, error) {
	filter := bson.M{"reactions._id": reactionID}
	update := bson.M{"$set": bson.M{"reactions.$.reactionBody": body}}
	return a.findOneAndUpdate(ctx, filter, update, "update reaction body")
}

func (a *ThoughtAdapter) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.Thought, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = a.collection.Find(ctx, filter, opts)
	} else {
		cursor, err = a.collection.Find(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list thoughts: %w", err)
	}
	defer cursor.Close(ctx)

	thoughts := []*domain.Thought{}
	for cursor.Next(ctx) {
		var doc thoughtDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode thought: %w", err)
		}
		thoughts = append(thoughts, toThoughtEntity(&doc))
	}
	return thoughts, cursor.Err()
}

func (a *ThoughtAdapter) findOne(ctx context.Context, filter bson.M) (*domain.Thought, error) {
	var doc thoughtDocument
	err := a.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get thought: %w", err)
	}
	return toThoughtEntity(&doc), nil
}

func (a *ThoughtAdapter) findOneAndUpdate(ctx context.Context, filter, update bson.M, op string) (*domain.Thought, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc thoughtDocument
	err := a.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	return toThoughtEntity(&doc), nil
}

func toThoughtDocument(thought *domain.Thought) *thoughtDocument {
	reactions := make([]reactionDocument, 0, len(thought.Reactions))
	for i := range thought.Reactions {
		reactions = append(reactions, *toReactionDocument(&thought.Reactions[i]))
	}
	return &thoughtDocument{
		ID:          thought.ID,
		ThoughtText: thought.ThoughtText,
		Username:    thought.Username,
		UserID:      thought.UserID,
		CreatedAt:   thought.CreatedAt,
		Reactions:   reactions,
	}
}

func toReactionDocument(reaction *domain.Reaction) *reactionDocument {
	return &reactionDocument{
		ID:           reaction.ID,
		ReactionBody: reaction.ReactionBody,
		Username:     reaction.Username,
		CreatedAt:    reaction.CreatedAt,
	}
}

func toThoughtEntity(doc *thoughtDocument) *domain.Thought {
	reactions := make([]domain.Reaction, 0, len(doc.Reactions))
	for _, r := range doc.Reactions {
		reactions = append(reactions, domain.Reaction{
			ID:           r.ID,
			ReactionBody: r.ReactionBody,
			Username:     r.Username,
			CreatedAt:    r.CreatedAt,
		})
	}
	return &domain.Thought{
		ID:          doc.ID,
		ThoughtText: doc.ThoughtText,
		Username:    doc.Username,
		UserID:      doc.UserID,
		CreatedAt:   doc.CreatedAt,
		Reactions:   reactions,
	}
}

var _ out.ThoughtRepository = (*ThoughtAdapter)(nil)
