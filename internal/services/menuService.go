package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/arzan03/BistroAPI/internal/models"
	"github.com/arzan03/BistroAPI/internal/store"
	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when a delete target is absent so handlers can
// respond with 404.
var ErrNotFound = errors.New("item not found")

type MenuService struct {
	menu store.Collection
}

func NewMenuService(menu store.Collection) *MenuService {
	return &MenuService{menu: menu}
}

func (s *MenuService) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.menu.Find(ctx, bson.M{}, &items); err != nil {
		return nil, fmt.Errorf("failed to fetch menu: %w", err)
	}
	return items, nil
}

func (s *MenuService) AddItem(ctx context.Context, item models.MenuItem) (*store.InsertOneResult, error) {
	result, err := s.menu.InsertOne(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to insert menu item: %w", err)
	}
	return result, nil
}

// DeleteItem removes one menu item. The id is validated before any store
// access; a zero delete count is reported as ErrNotFound.
func (s *MenuService) DeleteItem(ctx context.Context, id string) (*store.DeleteResult, error) {
	objID, err := store.ParseID(id)
	if err != nil {
		return nil, err
	}

	result, err := s.menu.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return nil, fmt.Errorf("failed to delete menu item: %w", err)
	}
	if result.DeletedCount == 0 {
		return nil, ErrNotFound
	}
	return result, nil
}
