package services

import (
	"context"
	"errors"
	"testing"

	"github.com/arzan03/BistroAPI/internal/models"
	"github.com/arzan03/BistroAPI/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRegisterUserIdempotentByEmail(t *testing.T) {
	users := store.NewMemoryCollection()
	svc := NewUserService(users)
	ctx := context.Background()

	if _, err := svc.RegisterUser(ctx, models.User{Email: "a@x.com", Name: "A"}); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	_, err := svc.RegisterUser(ctx, models.User{Email: "a@x.com", Name: "A again"})
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("second registration: got %v, want ErrUserExists", err)
	}

	count, _ := users.CountDocuments(ctx, bson.M{"email": "a@x.com"})
	if count != 1 {
		t.Errorf("store holds %d users for a@x.com, want exactly 1", count)
	}
}

func TestIsAdminUnknownEmail(t *testing.T) {
	svc := NewUserService(store.NewMemoryCollection())

	isAdmin, err := svc.IsAdmin(context.Background(), "nobody@x.com")
	if err != nil {
		t.Fatalf("IsAdmin failed: %v", err)
	}
	if isAdmin {
		t.Error("unknown email reported as admin")
	}
}

func TestPromoteAdmin(t *testing.T) {
	users := store.NewMemoryCollection()
	svc := NewUserService(users)
	ctx := context.Background()

	res, err := svc.RegisterUser(ctx, models.User{Email: "a@x.com"})
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	id := res.InsertedID.(primitive.ObjectID)

	upd, err := svc.PromoteAdmin(ctx, id.Hex())
	if err != nil {
		t.Fatalf("PromoteAdmin failed: %v", err)
	}
	if upd.MatchedCount != 1 || upd.ModifiedCount != 1 {
		t.Errorf("unexpected update result: %+v", upd)
	}

	isAdmin, err := svc.IsAdmin(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("IsAdmin failed: %v", err)
	}
	if !isAdmin {
		t.Error("promoted user not reported as admin")
	}
}

func TestPromoteAdminRejectsMalformedID(t *testing.T) {
	users := store.NewMemoryCollection()
	svc := NewUserService(users)

	if _, err := svc.PromoteAdmin(context.Background(), "abc"); !errors.Is(err, store.ErrInvalidID) {
		t.Fatalf("got %v, want ErrInvalidID", err)
	}
	if users.Operations() != 0 {
		t.Errorf("store was touched %d times for a malformed id", users.Operations())
	}
}
