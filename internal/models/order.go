package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus labels the lifecycle stage of an order. The intended
// progression is Pending → AwaitingReceipt → Paid → Processing →
// Shipped → Delivered, with Cancelled reachable from any non-terminal
// state. Transitions are not enforced; admins may override freely.
type OrderStatus string

const (
	StatusPending         OrderStatus = "Pending"
	StatusAwaitingReceipt OrderStatus = "AwaitingReceipt"
	StatusPaid            OrderStatus = "Paid"
	StatusProcessing      OrderStatus = "Processing"
	StatusShipped         OrderStatus = "Shipped"
	StatusDelivered       OrderStatus = "Delivered"
	StatusCancelled       OrderStatus = "Cancelled"
)

// KnownStatuses lists every status the service accepts on writes.
var KnownStatuses = []OrderStatus{
	StatusPending,
	StatusAwaitingReceipt,
	StatusPaid,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

// ValidStatus reports whether s is one of the known status values.
func ValidStatus(s OrderStatus) bool {
	for _, known := range KnownStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// OrderItem represents a single product entry within an order.
type OrderItem struct {
	ID       string  `bson:"id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Quantity int     `bson:"quantity" json:"quantity"`
}

// Order defines the persisted order document. EmailKey holds the
// lowercased email so customer lookups stay case-insensitive on an
// indexed field instead of scanning rows.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	OrderID       string             `bson:"orderId" json:"orderId"`
	Date          time.Time          `bson:"date" json:"date"`
	CustomerName  string             `bson:"customerName" json:"customerName"`
	Email         string             `bson:"email" json:"email"`
	EmailKey      string             `bson:"emailKey" json:"-"`
	ContactNumber string             `bson:"contactNumber" json:"contactNumber"`
	Address       string             `bson:"address" json:"address"`
	PaymentMethod string             `bson:"paymentMethod" json:"paymentMethod"`
	Items         []OrderItem        `bson:"items" json:"items"`
	TotalAmount   float64            `bson:"totalAmount" json:"totalAmount"`
	Status        OrderStatus        `bson:"status" json:"status"`
	ReceiptURL    string             `bson:"receiptUrl,omitempty" json:"receiptUrl,omitempty"`
}
