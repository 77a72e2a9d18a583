package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureOrderIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("orders").Indexes()

	orderIDIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "orderId", Value: 1}},
		Options: options.Index().
			SetName("orderId_unique").
			SetUnique(true),
	}
	emailIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "emailKey", Value: 1}, {Key: "date", Value: -1}},
		Options: options.Index().SetName("emailKey_date_index"),
	}

	log.Println("EnsureOrderIndexes: creating orderId_unique and emailKey_date_index")
	_, err := indexes.CreateMany(ctx, []mongo.IndexModel{orderIDIndex, emailIndex})
	if err != nil {
		log.Println("EnsureOrderIndexes: index error:", err)
		return err
	}
	return nil
}

func EnsureUserIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("users").Indexes()

	userIDIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().
			SetName("userId_unique").
			SetUnique(true),
	}

	log.Println("EnsureUserIndexes: creating userId_unique index")
	_, err := indexes.CreateOne(ctx, userIDIndex)
	if err != nil {
		log.Println("EnsureUserIndexes: userId index error:", err)
		return err
	}
	return nil
}

func EnsureFeedbackIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("feedback").Indexes()

	dateIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "date", Value: -1}},
		Options: options.Index().SetName("date_index"),
	}

	log.Println("EnsureFeedbackIndexes: creating date_index")
	_, err := indexes.CreateOne(ctx, dateIndex)
	if err != nil {
		log.Println("EnsureFeedbackIndexes: date index error:", err)
		return err
	}
	return nil
}

func EnsureCartIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("carts").Indexes()

	sessionIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "sessionId", Value: 1}},
		Options: options.Index().
			SetName("sessionId_unique").
			SetUnique(true),
	}

	log.Println("EnsureCartIndexes: creating sessionId_unique index")
	_, err := indexes.CreateOne(ctx, sessionIndex)
	if err != nil {
		log.Println("EnsureCartIndexes: sessionId index error:", err)
		return err
	}
	return nil
}
