package services

import (
	"context"
	"fmt"

	"github.com/arzan03/BistroAPI/internal/models"
	"github.com/arzan03/BistroAPI/internal/store"
	"go.mongodb.org/mongo-driver/bson"
)

type CartService struct {
	cart store.Collection
}

func NewCartService(cart store.Collection) *CartService {
	return &CartService{cart: cart}
}

func (s *CartService) AddItem(ctx context.Context, item models.CartItem) (*store.InsertOneResult, error) {
	result, err := s.cart.InsertOne(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to insert cart item: %w", err)
	}
	return result, nil
}

func (s *CartService) DeleteItem(ctx context.Context, id string) (*store.DeleteResult, error) {
	objID, err := store.ParseID(id)
	if err != nil {
		return nil, err
	}

	result, err := s.cart.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return nil, fmt.Errorf("failed to delete cart item: %w", err)
	}
	return result, nil
}

// ListByEmail returns the cart items owned by email. Identity matching
// against the caller's token happens in the handler.
func (s *CartService) ListByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := s.cart.Find(ctx, bson.M{"email": email}, &items); err != nil {
		return nil, fmt.Errorf("failed to fetch cart items: %w", err)
	}
	return items, nil
}
