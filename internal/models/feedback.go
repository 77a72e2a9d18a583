package models

import "time"

// Feedback is one free-form customer message appended to the feedback log.
type Feedback struct {
	Date         time.Time `bson:"date" json:"date"`
	Message      string    `bson:"message" json:"message"`
	Email        string    `bson:"email" json:"email"`
	UserID       string    `bson:"userId" json:"userId"`
	ErrorDetails string    `bson:"errorDetails" json:"errorDetails"`
	Status       string    `bson:"status" json:"status"`
	Notes        string    `bson:"notes" json:"notes"`
}
