package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is written once at checkout and never updated. CartIDs keeps the
// submission order so the record can be reconciled against the cart delete.
type Payment struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Email         string               `bson:"email" json:"email"`
	Amount        int64                `bson:"amount" json:"amount"` // minor currency units
	TransactionID string               `bson:"transaction_id" json:"transactionId"`
	CartIDs       []primitive.ObjectID `bson:"cart_ids" json:"cartIds"`
	Date          time.Time            `bson:"date" json:"date"`
}
