package store

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryCollection is an in-memory Collection driver used as the substitute
// store in tests. It supports the filter shapes the services actually use:
// empty filters, field equality, and {"field": {"$in": [...]}} plus "$set"
// updates. Documents keep insertion order.
type MemoryCollection struct {
	mu   sync.RWMutex
	docs []bson.M
	ops  int
}

func NewMemoryCollection() *MemoryCollection {
	return &MemoryCollection{}
}

// Operations returns how many store operations have been issued, so tests
// can assert that validation failures never reach the store.
func (c *MemoryCollection) Operations() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ops
}

// toDoc normalizes any document (struct or bson.M) into a bson.M through a
// marshal round trip, matching how the Mongo driver would store it.
func toDoc(v interface{}) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func decodeInto(doc bson.M, out interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}

func containsValue(list interface{}, v interface{}) bool {
	lv := reflect.ValueOf(list)
	if lv.Kind() != reflect.Slice && lv.Kind() != reflect.Array {
		return false
	}
	for i := 0; i < lv.Len(); i++ {
		if reflect.DeepEqual(lv.Index(i).Interface(), v) {
			return true
		}
	}
	return false
}

func matchFilter(doc bson.M, filter interface{}) bool {
	if filter == nil {
		return true
	}
	f, ok := filter.(bson.M)
	if !ok {
		return false
	}
	for key, want := range f {
		got, exists := doc[key]
		if op, isOp := want.(bson.M); isOp {
			if in, hasIn := op["$in"]; hasIn {
				if !exists || !containsValue(in, got) {
					return false
				}
				continue
			}
		}
		if !exists || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

func (c *MemoryCollection) Find(ctx context.Context, filter interface{}, out interface{}) error {
	c.mu.Lock()
	c.ops++
	c.mu.Unlock()

	c.mu.RLock()
	defer c.mu.RUnlock()

	slice := reflect.ValueOf(out).Elem()
	slice.Set(reflect.MakeSlice(slice.Type(), 0, 0))
	for _, doc := range c.docs {
		if !matchFilter(doc, filter) {
			continue
		}
		elem := reflect.New(slice.Type().Elem())
		if err := decodeInto(doc, elem.Interface()); err != nil {
			return err
		}
		slice.Set(reflect.Append(slice, elem.Elem()))
	}
	return nil
}

func (c *MemoryCollection) FindOne(ctx context.Context, filter interface{}, out interface{}) error {
	c.mu.Lock()
	c.ops++
	c.mu.Unlock()

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, doc := range c.docs {
		if matchFilter(doc, filter) {
			return decodeInto(doc, out)
		}
	}
	return ErrNoDocuments
}

func (c *MemoryCollection) InsertOne(ctx context.Context, document interface{}) (*InsertOneResult, error) {
	doc, err := toDoc(document)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.ops++

	id, ok := doc["_id"]
	if !ok {
		id = primitive.NewObjectID()
		doc["_id"] = id
	}
	c.docs = append(c.docs, doc)
	return &InsertOneResult{InsertedID: id}, nil
}

func (c *MemoryCollection) UpdateOne(ctx context.Context, filter, update interface{}) (*UpdateResult, error) {
	upd, ok := update.(bson.M)
	if !ok {
		return nil, fmt.Errorf("unsupported update type %T", update)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.ops++

	res := &UpdateResult{}
	for _, doc := range c.docs {
		if !matchFilter(doc, filter) {
			continue
		}
		res.MatchedCount = 1
		if set, ok := upd["$set"].(bson.M); ok {
			for k, v := range set {
				if !reflect.DeepEqual(doc[k], v) {
					doc[k] = v
					res.ModifiedCount = 1
				}
			}
		}
		break
	}
	return res, nil
}

func (c *MemoryCollection) DeleteOne(ctx context.Context, filter interface{}) (*DeleteResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ops++

	for i, doc := range c.docs {
		if matchFilter(doc, filter) {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return &DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &DeleteResult{}, nil
}

func (c *MemoryCollection) DeleteMany(ctx context.Context, filter interface{}) (*DeleteResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ops++

	kept := c.docs[:0]
	deleted := int64(0)
	for _, doc := range c.docs {
		if matchFilter(doc, filter) {
			deleted++
			continue
		}
		kept = append(kept, doc)
	}
	c.docs = kept
	return &DeleteResult{DeletedCount: deleted}, nil
}

func (c *MemoryCollection) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	c.mu.Lock()
	c.ops++
	c.mu.Unlock()

	c.mu.RLock()
	defer c.mu.RUnlock()

	count := int64(0)
	for _, doc := range c.docs {
		if matchFilter(doc, filter) {
			count++
		}
	}
	return count, nil
}
