package store

import (
	"errors"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseIDRoundTrip(t *testing.T) {
	id := primitive.NewObjectID()

	parsed, err := ParseID(id.Hex())
	if err != nil {
		t.Fatalf("ParseID rejected a fresh ObjectID hex: %v", err)
	}
	if parsed != id {
		t.Errorf("expected %s, got %s", id.Hex(), parsed.Hex())
	}
	if parsed.Hex() != id.Hex() {
		t.Errorf("round trip changed the identifier: %s -> %s", id.Hex(), parsed.Hex())
	}
}

func TestParseIDRejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		id   string
	}{
		{"empty", ""},
		{"short", "abc"},
		{"non-hex", "zzzzzzzzzzzzzzzzzzzzzzzz"},
		{"too long", strings.Repeat("a", 25)},
		// Decodes, but does not re-serialize to the same string.
		{"uppercase hex", strings.ToUpper(primitive.NewObjectID().Hex())},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseID(tc.id); !errors.Is(err, ErrInvalidID) {
				t.Errorf("ParseID(%q) = %v, want ErrInvalidID", tc.id, err)
			}
			if IsValidID(tc.id) {
				t.Errorf("IsValidID(%q) = true, want false", tc.id)
			}
		})
	}
}

func TestParseIDsKeepsOrder(t *testing.T) {
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()

	ids, err := ParseIDs([]string{first.Hex(), second.Hex()})
	if err != nil {
		t.Fatalf("ParseIDs failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != first || ids[1] != second {
		t.Errorf("ParseIDs did not preserve order: %v", ids)
	}

	if _, err := ParseIDs([]string{first.Hex(), "bogus"}); !errors.Is(err, ErrInvalidID) {
		t.Errorf("expected ErrInvalidID for batch with a malformed entry, got %v", err)
	}
}
