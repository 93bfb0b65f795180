package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mycrmsystems/elatco-will-system/internal/will"
)

// MongoRepo implements a MongoDB-backed repository for will records.
// Numeric record ids come from a per-collection counter document so the ids
// stay small and stable for artifact filenames.
type MongoRepo struct {
	col      *mongo.Collection
	counters *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	col := db.Collection("wills")
	// unique index on the numeric id
	idxModel := mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)}
	col.Indexes().CreateOne(context.Background(), idxModel)
	return &MongoRepo{col: col, counters: db.Collection("counters")}
}

func (m *MongoRepo) nextID(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := m.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": "wills"},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Seq, nil
}

func (m *MongoRepo) Create(ctx context.Context, w *will.Will) (int64, error) {
	id, err := m.nextID(ctx)
	if err != nil {
		return 0, err
	}
	w.ID = id
	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now().UTC()
	}
	if _, err := m.col.InsertOne(ctx, w); err != nil {
		return 0, err
	}
	return w.ID, nil
}

func (m *MongoRepo) Get(ctx context.Context, id int64) (*will.Will, error) {
	var w will.Will
	err := m.col.FindOne(ctx, bson.M{"id": id}).Decode(&w)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &w, nil
}

func (m *MongoRepo) List(ctx context.Context) ([]*will.Will, error) {
	cur, err := m.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*will.Will{}
	for cur.Next(ctx) {
		var w will.Will
		if err := cur.Decode(&w); err != nil {
			return nil, err
		}
		out = append(out, &w)
	}
	return out, cur.Err()
}

func (m *MongoRepo) UpdateArtifact(ctx context.Context, id int64, filename string) error {
	res, err := m.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"pdfFilename": filename}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
