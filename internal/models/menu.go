package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name" validate:"required"`
	Recipe   string             `bson:"recipe,omitempty" json:"recipe,omitempty"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	Category string             `bson:"category" json:"category"`
	Price    float64            `bson:"price" json:"price"`
}
