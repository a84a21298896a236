package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arzan03/BistroAPI/internal/models"
	"github.com/arzan03/BistroAPI/internal/store"
	"go.mongodb.org/mongo-driver/bson"
)

// ErrUserExists signals an idempotent re-registration, not a failure.
var ErrUserExists = errors.New("user already exists")

type UserService struct {
	users store.Collection
}

func NewUserService(users store.Collection) *UserService {
	return &UserService{users: users}
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.users.Find(ctx, bson.M{}, &users); err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

// RegisterUser inserts a user keyed by email. Registering an existing email
// is a no-op reported as ErrUserExists.
func (s *UserService) RegisterUser(ctx context.Context, user models.User) (*store.InsertOneResult, error) {
	var existing models.User
	err := s.users.FindOne(ctx, bson.M{"email": user.Email}, &existing)
	if err == nil {
		return nil, ErrUserExists
	}
	if !store.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	user.CreatedAt = time.Now()
	result, err := s.users.InsertOne(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	return result, nil
}

// IsAdmin reports whether the user registered under email holds the admin
// role. An unknown email is simply not an admin.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}, &user)
	if err != nil {
		if store.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up user: %w", err)
	}
	return user.Role == "admin", nil
}

// PromoteAdmin sets role=admin on the user with the given id.
func (s *UserService) PromoteAdmin(ctx context.Context, id string) (*store.UpdateResult, error) {
	objID, err := store.ParseID(id)
	if err != nil {
		return nil, err
	}

	result, err := s.users.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"role": "admin"}})
	if err != nil {
		return nil, fmt.Errorf("failed to update user role: %w", err)
	}
	return result, nil
}
