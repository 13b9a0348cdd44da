package config

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the query-helper indexes for the list endpoints.
// Every listable collection sorts on "order"; images and videos are also
// filtered by category.
func EnsureIndexes(m *Mongo) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ordered := []string{"skills", "experience", "projects", "awards"}
	for _, name := range ordered {
		col := m.DB.Collection(name)
		_, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "order", Value: 1}},
			Options: options.Index().SetName("by_order"),
		})
		if err != nil {
			return err
		}
	}

	categorized := []string{"portfolio_images", "videos"}
	for _, name := range categorized {
		col := m.DB.Collection(name)
		_, err := col.Indexes().CreateMany(ctx, []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "order", Value: 1}},
				Options: options.Index().SetName("by_order"),
			},
			{
				Keys:    bson.D{{Key: "category", Value: 1}, {Key: "order", Value: 1}},
				Options: options.Index().SetName("by_category_order"),
			},
		})
		if err != nil {
			return err
		}
	}

	return nil
}
