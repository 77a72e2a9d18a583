package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront-backend/internal/apperr"
	"storefront-backend/internal/models"
)

// MongoCatalogSource reads raw catalog rows from the "products"
// collection. Rows are stored spreadsheet-shaped: every field a string,
// exactly as the external catalog tooling imports them.
type MongoCatalogSource struct {
	db *mongo.Database
}

func NewMongoCatalogSource(db *mongo.Database) *MongoCatalogSource {
	return &MongoCatalogSource{db: db}
}

func (s *MongoCatalogSource) Rows(ctx context.Context) ([]Row, error) {
	cursor, err := s.db.Collection("products").Find(ctx, bson.M{})
	if err != nil {
		return nil, apperr.Upstream("catalog source", err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, apperr.Upstream("catalog source", err)
	}

	rows := make([]Row, 0, len(docs))
	for _, doc := range docs {
		row := Row{}
		for key, value := range doc {
			if key == "_id" {
				continue
			}
			if text, ok := value.(string); ok {
				row[key] = text
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// MongoUserStore backs user profiles with the "users" collection.
type MongoUserStore struct {
	db *mongo.Database
}

func NewMongoUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{db: db}
}

func (s *MongoUserStore) Find(ctx context.Context, userID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.Collection("users").FindOne(ctx, bson.M{"userId": userID}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.NotFound("user profile")
	}
	if err != nil {
		return nil, apperr.Upstream("user store", err)
	}
	return &profile, nil
}

func (s *MongoUserStore) Upsert(ctx context.Context, profile *models.UserProfile) error {
	profile.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	_, err := s.db.Collection("users").ReplaceOne(ctx,
		bson.M{"userId": profile.UserID}, profile, opts)
	return apperr.Upstream("user store", err)
}

type sessionCartDoc struct {
	SessionID string            `bson:"sessionId"`
	Items     []models.CartItem `bson:"items"`
	UpdatedAt time.Time         `bson:"updatedAt"`
}

// MongoCartStore keeps anonymous session carts in the "carts" collection.
type MongoCartStore struct {
	db *mongo.Database
}

func NewMongoCartStore(db *mongo.Database) *MongoCartStore {
	return &MongoCartStore{db: db}
}

func (s *MongoCartStore) Load(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	var doc sessionCartDoc
	err := s.db.Collection("carts").FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Upstream("cart store", err)
	}
	return doc.Items, nil
}

func (s *MongoCartStore) Save(ctx context.Context, sessionID string, items []models.CartItem) error {
	doc := sessionCartDoc{SessionID: sessionID, Items: items, UpdatedAt: time.Now()}
	opts := options.Replace().SetUpsert(true)
	_, err := s.db.Collection("carts").ReplaceOne(ctx,
		bson.M{"sessionId": sessionID}, doc, opts)
	return apperr.Upstream("cart store", err)
}

// MongoFeedbackStore appends feedback entries to the "feedback" collection.
type MongoFeedbackStore struct {
	db *mongo.Database
}

func NewMongoFeedbackStore(db *mongo.Database) *MongoFeedbackStore {
	return &MongoFeedbackStore{db: db}
}

func (s *MongoFeedbackStore) Append(ctx context.Context, entry *models.Feedback) error {
	_, err := s.db.Collection("feedback").InsertOne(ctx, entry)
	return apperr.Upstream("feedback store", err)
}
