package bootstrap

import (
	"context"
	"time"

	"social_server/adapter/out/mongodb"
	"social_server/config"
	"social_server/core/port/in"
	"social_server/core/service/friend"
	"social_server/core/service/reaction"
	"social_server/core/service/thought"
	"social_server/core/service/user"
	"social_server/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
)

// Dependencies holds the wired application components.
type Dependencies struct {
	Mongo *mongo.Client

	UserService     in.UserService
	ThoughtService  in.ThoughtService
	ReactionService in.ReactionService
	FriendService   in.FriendService
}

// NewDependencies connects the database and wires repositories and
// services. The returned cleanup disconnects the Mongo client.
func NewDependencies(cfg *config.Config) (*Dependencies, func(), error) {
	client, err := mongodb.NewClient(cfg.MongoDBURL)
	if err != nil {
		return nil, nil, err
	}
	db := client.Database(cfg.MongoDBName)

	userRepo := mongodb.NewUserAdapter(db)
	thoughtRepo := mongodb.NewThoughtAdapter(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		logger.WithError(err).Warn("Failed to ensure user indexes")
	}
	if err := thoughtRepo.EnsureIndexes(ctx); err != nil {
		logger.WithError(err).Warn("Failed to ensure thought indexes")
	}

	deps := &Dependencies{
		Mongo:           client,
		UserService:     user.NewService(userRepo, thoughtRepo),
		ThoughtService:  thought.NewService(thoughtRepo, userRepo),
		ReactionService: reaction.NewService(thoughtRepo, userRepo),
		FriendService:   friend.NewService(userRepo),
	}

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logger.WithError(err).Error("Failed to disconnect MongoDB")
		}
	}

	return deps, cleanup, nil
}
