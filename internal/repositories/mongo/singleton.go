package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/melroseheights/portfolio-backend/internal/utils"
)

// SingletonRepository backs the collections that hold exactly one document
// (personal info, social links). There is no create or delete: seeding the
// document is the startup seeder's job, and Update on a missing document
// fails NOT_FOUND rather than inserting one.
type SingletonRepository[T any] interface {
	Get(ctx context.Context) (*T, error)
	Update(ctx context.Context, set bson.M) (*T, error)
}

type singletonRepo[T any] struct {
	col *mongo.Collection
}

func NewSingletonRepository[T any](db *mongo.Database, collection string) SingletonRepository[T] {
	return &singletonRepo[T]{col: db.Collection(collection)}
}

func (r *singletonRepo[T]) Get(ctx context.Context) (*T, error) {
	const op = "SingletonRepository.Get"

	var doc T
	err := r.col.FindOne(ctx, bson.M{}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.E(utils.CodeNotFound, op, "document not found", err)
	}
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch document", err)
	}
	return &doc, nil
}

func (r *singletonRepo[T]) Update(ctx context.Context, set bson.M) (*T, error) {
	const op = "SingletonRepository.Update"

	if set == nil {
		set = bson.M{}
	}
	set["updated_at"] = time.Now().UTC()

	var doc T
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.E(utils.CodeNotFound, op, "document not found", err)
	}
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update document", err)
	}
	return &doc, nil
}
