package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is a snapshot of a menu item placed in a user's cart. Price is
// copied at add time so later menu edits don't change what the user saw.
type CartItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	MenuItemID string             `bson:"menu_item_id" json:"menuItemId"`
	Name       string             `bson:"name" json:"name"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	Price      float64            `bson:"price" json:"price"`
	Email      string             `bson:"email" json:"email" validate:"required,email"`
}
