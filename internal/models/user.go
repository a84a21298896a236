package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	Role      string             `bson:"role,omitempty" json:"role,omitempty"` // "" or "admin"
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
