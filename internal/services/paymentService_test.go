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

type fakeGateway struct {
	calls  int
	secret string
	err    error
}

func (g *fakeGateway) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	g.calls++
	return g.secret, g.err
}

func seedCart(t *testing.T, cart store.Collection, email string, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		res, err := cart.InsertOne(context.Background(), models.CartItem{
			MenuItemID: primitive.NewObjectID().Hex(),
			Name:       "dish",
			Price:      12.5,
			Email:      email,
		})
		if err != nil {
			t.Fatalf("seeding cart failed: %v", err)
		}
		ids = append(ids, res.InsertedID.(primitive.ObjectID).Hex())
	}
	return ids
}

func TestCheckoutInsertsPaymentAndClearsCart(t *testing.T) {
	payments := store.NewMemoryCollection()
	cart := store.NewMemoryCollection()
	svc := NewPaymentService(payments, cart, &fakeGateway{})
	ctx := context.Background()

	cartIDs := seedCart(t, cart, "a@x.com", 2)

	result, err := svc.Checkout(ctx, CheckoutRequest{
		Email:         "a@x.com",
		Amount:        2500,
		TransactionID: "txn_123",
		CartIDs:       cartIDs,
	})
	if err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}
	if result.InsertResult == nil || result.InsertResult.InsertedID == nil {
		t.Fatal("checkout did not report an inserted payment id")
	}
	if result.DeleteResult == nil || result.DeleteResult.DeletedCount != 2 {
		t.Fatalf("delete result = %+v, want 2 deleted", result.DeleteResult)
	}

	var stored []models.Payment
	if err := payments.Find(ctx, bson.M{}, &stored); err != nil {
		t.Fatalf("reading payments failed: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("payment count = %d, want 1", len(stored))
	}
	p := stored[0]
	if p.Email != "a@x.com" || p.Amount != 2500 || p.TransactionID != "txn_123" {
		t.Errorf("payment record = %+v", p)
	}
	if len(p.CartIDs) != 2 || p.CartIDs[0].Hex() != cartIDs[0] || p.CartIDs[1].Hex() != cartIDs[1] {
		t.Errorf("payment cartIds = %v, want %v in order", p.CartIDs, cartIDs)
	}

	remaining, _ := cart.CountDocuments(ctx, bson.M{})
	if remaining != 0 {
		t.Errorf("cart still holds %d items after checkout", remaining)
	}
}

func TestCheckoutDuplicateSubmissionsInsertTwoPayments(t *testing.T) {
	// Re-running the same submission is intentionally not deduplicated.
	payments := store.NewMemoryCollection()
	cart := store.NewMemoryCollection()
	svc := NewPaymentService(payments, cart, &fakeGateway{})
	ctx := context.Background()

	req := CheckoutRequest{
		Email:         "a@x.com",
		Amount:        500,
		TransactionID: "txn_dup",
		CartIDs:       seedCart(t, cart, "a@x.com", 1),
	}

	if _, err := svc.Checkout(ctx, req); err != nil {
		t.Fatalf("first checkout failed: %v", err)
	}
	second, err := svc.Checkout(ctx, req)
	if err != nil {
		t.Fatalf("second checkout failed: %v", err)
	}
	if second.DeleteResult.DeletedCount != 0 {
		t.Errorf("second delete count = %d, want 0", second.DeleteResult.DeletedCount)
	}

	count, _ := payments.CountDocuments(ctx, bson.M{"transaction_id": "txn_dup"})
	if count != 2 {
		t.Errorf("payment count = %d, want 2 duplicate records", count)
	}
}

func TestCheckoutValidationBeforeStoreAccess(t *testing.T) {
	cases := []struct {
		name    string
		req     CheckoutRequest
		wantErr error
	}{
		{
			name:    "empty cartIds",
			req:     CheckoutRequest{Email: "a@x.com", Amount: 500},
			wantErr: ErrInvalidPayment,
		},
		{
			name: "amount below minimum",
			req: CheckoutRequest{
				Email:   "a@x.com",
				Amount:  MinChargeAmount - 1,
				CartIDs: []string{primitive.NewObjectID().Hex()},
			},
			wantErr: ErrInvalidPayment,
		},
		{
			name: "malformed cart id",
			req: CheckoutRequest{
				Email:   "a@x.com",
				Amount:  500,
				CartIDs: []string{"not-an-id"},
			},
			wantErr: store.ErrInvalidID,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payments := store.NewMemoryCollection()
			cart := store.NewMemoryCollection()
			svc := NewPaymentService(payments, cart, &fakeGateway{})

			if _, err := svc.Checkout(context.Background(), tc.req); !errors.Is(err, tc.wantErr) {
				t.Fatalf("got %v, want %v", err, tc.wantErr)
			}
			if ops := payments.Operations() + cart.Operations(); ops != 0 {
				t.Errorf("store was touched %d times before validation failed", ops)
			}
		})
	}
}

func TestCreateIntentPassesThrough(t *testing.T) {
	gateway := &fakeGateway{secret: "pi_secret"}
	svc := NewPaymentService(store.NewMemoryCollection(), store.NewMemoryCollection(), gateway)

	secret, err := svc.CreateIntent(context.Background(), 1000, "")
	if err != nil {
		t.Fatalf("CreateIntent failed: %v", err)
	}
	if secret != "pi_secret" {
		t.Errorf("client secret = %q, want pi_secret", secret)
	}
	if gateway.calls != 1 {
		t.Errorf("gateway called %d times, want 1", gateway.calls)
	}
}

func TestCreateIntentBelowMinimumSkipsGateway(t *testing.T) {
	gateway := &fakeGateway{secret: "pi_secret"}
	svc := NewPaymentService(store.NewMemoryCollection(), store.NewMemoryCollection(), gateway)

	_, err := svc.CreateIntent(context.Background(), 10, "usd")
	if !errors.Is(err, ErrInvalidPayment) {
		t.Fatalf("got %v, want ErrInvalidPayment", err)
	}
	if gateway.calls != 0 {
		t.Errorf("gateway called %d times for a below-minimum amount", gateway.calls)
	}
}

func TestCreateIntentSurfacesGatewayError(t *testing.T) {
	gateway := &fakeGateway{err: errors.New("gateway down")}
	svc := NewPaymentService(store.NewMemoryCollection(), store.NewMemoryCollection(), gateway)

	if _, err := svc.CreateIntent(context.Background(), 1000, "usd"); err == nil {
		t.Fatal("expected the gateway failure to surface")
	}
	if gateway.calls != 1 {
		t.Errorf("gateway called %d times, want 1 (no retry)", gateway.calls)
	}
}
