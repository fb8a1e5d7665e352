package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCollection implements Collection over a MongoDB collection. T must map
// its public id field to bson "_id".
type MongoCollection[T any] struct {
	col *mongo.Collection
}

func NewMongoCollection[T any](col *mongo.Collection) *MongoCollection[T] {
	return &MongoCollection[T]{col: col}
}

func (m *MongoCollection[T]) Name() string { return m.col.Name() }

func (m *MongoCollection[T]) List(ctx context.Context, q Query) ([]T, error) {
	filter := bson.M{}
	for k, v := range q.Filter {
		filter[k] = v
	}
	opts := options.Find()
	if q.Sort != "" {
		dir := 1
		if q.Desc {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: q.Sort, Value: dir}})
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}
	cur, err := m.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *MongoCollection[T]) Get(ctx context.Context, id string) (*T, error) {
	var d T
	err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (m *MongoCollection[T]) Insert(ctx context.Context, id string, doc *T) error {
	res, err := m.col.InsertOne(ctx, doc)
	if err != nil {
		return err
	}
	if res.InsertedID == nil || res.InsertedID != id {
		return ErrNotInserted
	}
	return nil
}

func (m *MongoCollection[T]) Update(ctx context.Context, id string, set map[string]any) (int64, error) {
	res, err := m.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M(set)})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (m *MongoCollection[T]) Delete(ctx context.Context, id string) (int64, error) {
	res, err := m.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (m *MongoCollection[T]) DeleteAll(ctx context.Context) (int64, error) {
	res, err := m.col.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// MongoPinger checks the client behind the collections.
type MongoPinger struct {
	Client *mongo.Client
}

func (p MongoPinger) Ping(ctx context.Context) error {
	return p.Client.Ping(ctx, nil)
}
