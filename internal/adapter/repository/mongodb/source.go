package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/platform/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	usersCollection        = "users"
	housesCollection       = "houses"
	transactionsCollection = "transactions"
	chatsCollection        = "chats"
)

// Source implements domain.RecordSource over the marketplace database. It
// only ever reads.
type Source struct {
	db     *mongo.Database
	logger *logger.Logger
}

func NewSource(db *mongo.Database, log *logger.Logger) *Source {
	return &Source{
		db:     db,
		logger: log.Named("MongoSource"),
	}
}

// Connect opens a client and pings the primary.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

func findAll[D any, T any](ctx context.Context, s *Source, collection string, convert func(*D) T) ([]T, error) {
	s.logger.Debug("Loading collection", zap.String("collection", collection))

	cursor, err := s.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		s.logger.Error("Failed to query collection", zap.String("collection", collection), zap.Error(err))
		return nil, fmt.Errorf("db find %s failed: %w", collection, err)
	}
	var docs []D
	if err := cursor.All(ctx, &docs); err != nil {
		s.logger.Error("Failed to decode collection", zap.String("collection", collection), zap.Error(err))
		return nil, fmt.Errorf("db decode %s failed: %w", collection, err)
	}

	out := make([]T, 0, len(docs))
	for i := range docs {
		out = append(out, convert(&docs[i]))
	}
	s.logger.Info("Collection loaded", zap.String("collection", collection), zap.Int("count", len(out)))
	return out, nil
}

func (s *Source) Users(ctx context.Context) ([]domain.User, error) {
	return findAll(ctx, s, usersCollection, (*userDocument).toDomain)
}

func (s *Source) Properties(ctx context.Context) ([]domain.Property, error) {
	return findAll(ctx, s, housesCollection, (*houseDocument).toDomain)
}

func (s *Source) Transactions(ctx context.Context) ([]domain.Transaction, error) {
	return findAll(ctx, s, transactionsCollection, (*transactionDocument).toDomain)
}

func (s *Source) Chats(ctx context.Context) ([]domain.Chat, error) {
	return findAll(ctx, s, chatsCollection, (*chatDocument).toDomain)
}
