package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Asamis999/seo-article-generator/internal/models"
)

const articlesCollection = "articles"

// MongoStore is the durable article store. Record IDs are store-assigned
// ObjectIDs, exposed to the rest of the service as hex strings.
type MongoStore struct {
	client      *mongo.Client
	coll        *mongo.Collection
	pingTimeout time.Duration
}

// articleDoc pairs the Mongo-native _id with the shared record shape.
type articleDoc struct {
	ID             bson.ObjectID `bson:"_id,omitempty"`
	models.Article `bson:",inline"`
}

func (d *articleDoc) toArticle() *models.Article {
	article := d.Article
	article.ID = d.ID.Hex()
	return &article
}

// NewMongoStore wraps an already-constructed client. The driver connects
// lazily, so an unreachable database is only observed at operation time.
func NewMongoStore(client *mongo.Client, database string, pingTimeout time.Duration) *MongoStore {
	return &MongoStore{
		client:      client,
		coll:        client.Database(database).Collection(articlesCollection),
		pingTimeout: pingTimeout,
	}
}

// Connect builds a client for the given URI and returns the store.
func Connect(uri, database string, pingTimeout time.Duration) (*MongoStore, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	return NewMongoStore(client, database, pingTimeout), nil
}

func (s *MongoStore) Backend() Backend {
	return BackendMongo
}

// Reachable probes connectivity with a fresh ping. Any failure, including a
// nil receiver, reads as unreachable.
func (s *MongoStore) Reachable(ctx context.Context) bool {
	if s == nil || s.client == nil {
		return false
	}

	pingCtx, cancel := context.WithTimeout(ctx, s.pingTimeout)
	defer cancel()

	return s.client.Ping(pingCtx, nil) == nil
}

// Close disconnects the underlying client.
func (s *MongoStore) Close(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) Create(ctx context.Context, article *models.Article) error {
	now := time.Now()
	if article.CreatedAt.IsZero() {
		article.CreatedAt = now
	}
	article.UpdatedAt = now

	res, err := s.coll.InsertOne(ctx, articleDoc{Article: *article})
	if err != nil {
		return fmt.Errorf("insert article: %w", err)
	}

	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	article.ID = oid.Hex()
	return nil
}

func (s *MongoStore) GetByID(ctx context.Context, id string) (*models.Article, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var doc articleDoc
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find article: %w", err)
	}
	return doc.toArticle(), nil
}

func (s *MongoStore) List(ctx context.Context) ([]models.Article, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer cursor.Close(ctx)

	articles := []models.Article{}
	for cursor.Next(ctx) {
		var doc articleDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode article: %w", err)
		}
		articles = append(articles, *doc.toArticle())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}
	return articles, nil
}

func (s *MongoStore) Update(ctx context.Context, id string, fields models.UpdateFields) (*models.Article, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	set := bson.M{"updatedAt": time.Now()}
	if fields.GeneratedArticle != nil {
		set["generatedArticle"] = *fields.GeneratedArticle
	}
	if fields.SEOScore != nil {
		set["seoScore"] = *fields.SEOScore
	}
	if fields.SEORecommendations != nil {
		set["seoRecommendations"] = *fields.SEORecommendations
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc articleDoc
	err = s.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return doc.toArticle(), nil
}

// Delete checks existence before removing so an unknown ID reports not found
// rather than silently succeeding. The window between the two calls is a
// benign race: a concurrent delete just wins.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("find article: %w", err)
	}

	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}
