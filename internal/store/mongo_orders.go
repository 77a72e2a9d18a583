package store

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront-backend/internal/apperr"
	"storefront-backend/internal/models"
)

// MongoOrderStore backs the order ledger with the "orders" collection.
type MongoOrderStore struct {
	db *mongo.Database
}

func NewMongoOrderStore(db *mongo.Database) *MongoOrderStore {
	return &MongoOrderStore{db: db}
}

func (s *MongoOrderStore) collection() *mongo.Collection {
	return s.db.Collection("orders")
}

func (s *MongoOrderStore) Insert(ctx context.Context, order *models.Order) error {
	order.EmailKey = strings.ToLower(strings.TrimSpace(order.Email))
	if _, err := s.collection().InsertOne(ctx, order); err != nil {
		return apperr.Upstream("order store", err)
	}
	return nil
}

func (s *MongoOrderStore) FindByID(ctx context.Context, orderID string) (*models.Order, error) {
	return s.findOne(ctx, bson.M{"orderId": orderID})
}

func (s *MongoOrderStore) FindByIDAndEmail(ctx context.Context, orderID, email string) (*models.Order, error) {
	return s.findOne(ctx, bson.M{
		"orderId":  orderID,
		"emailKey": strings.ToLower(strings.TrimSpace(email)),
	})
}

func (s *MongoOrderStore) findOne(ctx context.Context, filter bson.M) (*models.Order, error) {
	var order models.Order
	err := s.collection().FindOne(ctx, filter).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.NotFound("order")
	}
	if err != nil {
		return nil, apperr.Upstream("order store", err)
	}
	return &order, nil
}

func (s *MongoOrderStore) UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	res, err := s.collection().UpdateOne(ctx,
		bson.M{"orderId": orderID},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return apperr.Upstream("order store", err)
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("order")
	}
	return nil
}

func (s *MongoOrderStore) AttachReceipt(ctx context.Context, orderID, receiptURL string) error {
	res, err := s.collection().UpdateOne(ctx,
		bson.M{"orderId": orderID},
		bson.M{"$set": bson.M{"receiptUrl": receiptURL, "status": models.StatusPaid}},
	)
	if err != nil {
		return apperr.Upstream("order store", err)
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("order")
	}
	return nil
}

func (s *MongoOrderStore) ListByEmail(ctx context.Context, email string) ([]models.Order, error) {
	return s.list(ctx, bson.M{"emailKey": strings.ToLower(strings.TrimSpace(email))})
}

func (s *MongoOrderStore) ListAll(ctx context.Context) ([]models.Order, error) {
	return s.list(ctx, bson.M{})
}

func (s *MongoOrderStore) list(ctx context.Context, filter bson.M) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := s.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, apperr.Upstream("order store", err)
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, apperr.Upstream("order store", err)
	}
	return orders, nil
}
