// Package renders keeps an audit trail of PDF render runs so the admin view
// can show when and why an artifact was produced.
package renders

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Entry records one completed render of a will's PDF.
type Entry struct {
	RenderID    string    `bson:"renderId" json:"renderId"`
	WillID      int64     `bson:"willId" json:"willId"`
	Filename    string    `bson:"filename" json:"filename"`
	Size        int       `bson:"size" json:"size"`
	Regenerated bool      `bson:"regenerated" json:"regenerated"`
	RenderedAt  time.Time `bson:"renderedAt" json:"renderedAt"`
}

// Store persists render entries. Recording is best-effort bookkeeping; the
// will service must not fail a download because the audit write failed.
type Store interface {
	Record(ctx context.Context, e *Entry) error
	ListByWill(ctx context.Context, willID int64) ([]*Entry, error)
}

// MongoStore keeps render entries in a Mongo collection.
type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(col *mongo.Collection) *MongoStore {
	return &MongoStore{col: col}
}

func (s *MongoStore) Record(ctx context.Context, e *Entry) error {
	if e.RenderID == "" {
		e.RenderID = uuid.NewString()
	}
	if e.RenderedAt.IsZero() {
		e.RenderedAt = time.Now().UTC()
	}
	_, err := s.col.InsertOne(ctx, e)
	return err
}

func (s *MongoStore) ListByWill(ctx context.Context, willID int64) ([]*Entry, error) {
	cur, err := s.col.Find(ctx, bson.M{"willId": willID},
		options.Find().SetSort(bson.D{{Key: "renderedAt", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*Entry{}
	for cur.Next(ctx) {
		var e Entry
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	return out, cur.Err()
}

// MemoryStore is an in-memory Store for tests and Mongo-less deployments.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []*Entry
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Record(ctx context.Context, e *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.RenderID == "" {
		e.RenderID = uuid.NewString()
	}
	if e.RenderedAt.IsZero() {
		e.RenderedAt = time.Now().UTC()
	}
	cp := *e
	s.entries = append(s.entries, &cp)
	return nil
}

func (s *MemoryStore) ListByWill(ctx context.Context, willID int64) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []*Entry{}
	for _, e := range s.entries {
		if e.WillID == willID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}
