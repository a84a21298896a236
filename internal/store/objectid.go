package store

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID marks a malformed identifier from untrusted input. Handlers
// map it to HTTP 400 before any collection is touched.
var ErrInvalidID = errors.New("invalid ID")

// ParseID validates an untrusted hex identifier and converts it to an
// ObjectID. The round-trip check rejects strings that merely decode
// (e.g. uppercase hex) but would not re-serialize to the same value.
func ParseID(id string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil || objID.Hex() != id {
		return primitive.NilObjectID, ErrInvalidID
	}
	return objID, nil
}

// ParseIDs validates a batch of identifiers, keeping their order.
func ParseIDs(ids []string) ([]primitive.ObjectID, error) {
	objIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objID, err := ParseID(id)
		if err != nil {
			return nil, err
		}
		objIDs = append(objIDs, objID)
	}
	return objIDs, nil
}

// IsValidID reports whether id round-trips through ObjectID parsing.
func IsValidID(id string) bool {
	_, err := ParseID(id)
	return err == nil
}
