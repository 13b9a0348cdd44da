package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/melroseheights/portfolio-backend/internal/utils"
)

// Collection names.
const (
	ColPersonalInfo    = "personal_info"
	ColSocialLinks     = "social_links"
	ColSkills          = "skills"
	ColExperience      = "experience"
	ColProjects        = "projects"
	ColPortfolioImages = "portfolio_images"
	ColVideos          = "videos"
	ColAwards          = "awards"
)

// Repository is the CRUD contract shared by every list-shaped entity kind.
// Every mutation stamps updated_at; Create round-trips through the store so
// the response reflects exactly what was persisted.
type Repository[T any] interface {
	List(ctx context.Context, filter bson.M) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, fields bson.M) (*T, error)
	Update(ctx context.Context, id string, set bson.M) (*T, error)
	Delete(ctx context.Context, id string) error
}

type documentRepo[T any] struct {
	col *mongo.Collection
}

func NewRepository[T any](db *mongo.Database, collection string) Repository[T] {
	return &documentRepo[T]{col: db.Collection(collection)}
}

// parseID rejects syntactically invalid identifiers before any store access.
func parseID(op, id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, utils.E(utils.CodeInvalidArgument, op, "invalid document id", err)
	}
	return oid, nil
}

func (r *documentRepo[T]) List(ctx context.Context, filter bson.M) ([]T, error) {
	const op = "Repository.List"

	if filter == nil {
		filter = bson.M{}
	}

	cur, err := r.col.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}}),
	)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to query documents", err)
	}
	defer cur.Close(ctx)

	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to decode documents", err)
	}
	return out, nil
}

func (r *documentRepo[T]) Get(ctx context.Context, id string) (*T, error) {
	const op = "Repository.Get"

	oid, err := parseID(op, id)
	if err != nil {
		return nil, err
	}

	var doc T
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.E(utils.CodeNotFound, op, "document not found", err)
	}
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch document", err)
	}
	return &doc, nil
}

func (r *documentRepo[T]) Create(ctx context.Context, fields bson.M) (*T, error) {
	const op = "Repository.Create"

	now := time.Now().UTC()
	fields["created_at"] = now
	fields["updated_at"] = now

	res, err := r.col.InsertOne(ctx, fields)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to insert document", err)
	}

	var doc T
	if err := r.col.FindOne(ctx, bson.M{"_id": res.InsertedID}).Decode(&doc); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to read back created document", err)
	}
	return &doc, nil
}

func (r *documentRepo[T]) Update(ctx context.Context, id string, set bson.M) (*T, error) {
	const op = "Repository.Update"

	oid, err := parseID(op, id)
	if err != nil {
		return nil, err
	}

	if set == nil {
		set = bson.M{}
	}
	set["updated_at"] = time.Now().UTC()

	var doc T
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
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

func (r *documentRepo[T]) Delete(ctx context.Context, id string) error {
	const op = "Repository.Delete"

	oid, err := parseID(op, id)
	if err != nil {
		return err
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to delete document", err)
	}
	if res.DeletedCount == 0 {
		return utils.E(utils.CodeNotFound, op, "document not found", nil)
	}
	return nil
}
