package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PortfolioImage references files stored under the upload root; ImageURL
// and ThumbnailURL are public /api/uploads/... paths produced by ingestion,
// not arbitrary external URLs.
type PortfolioImage struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Category     string             `bson:"category" json:"category"` // fashion, covers, stillLife, artPhotoPainting, editorial
	ImageURL     string             `bson:"image_url" json:"image_url"`
	ThumbnailURL string             `bson:"thumbnail_url" json:"thumbnail_url"`
	Order        int                `bson:"order" json:"order"`
	Featured     bool               `bson:"featured" json:"featured"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

type PortfolioImageCreate struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Category     string `json:"category" binding:"required"`
	ImageURL     string `json:"image_url" binding:"required"`
	ThumbnailURL string `json:"thumbnail_url"`
	Order        int    `json:"order"`
	Featured     bool   `json:"featured"`
}

func (r PortfolioImageCreate) Fields() bson.M {
	return bson.M{
		"title":         r.Title,
		"description":   r.Description,
		"category":      r.Category,
		"image_url":     r.ImageURL,
		"thumbnail_url": r.ThumbnailURL,
		"order":         r.Order,
		"featured":      r.Featured,
	}
}

type PortfolioImageUpdate struct {
	Title        *string `json:"title,omitempty"`
	Description  *string `json:"description,omitempty"`
	Category     *string `json:"category,omitempty"`
	ImageURL     *string `json:"image_url,omitempty"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty"`
	Order        *int    `json:"order,omitempty"`
	Featured     *bool   `json:"featured,omitempty"`
}

func (r PortfolioImageUpdate) SetFields() bson.M {
	set := bson.M{}
	if r.Title != nil {
		set["title"] = *r.Title
	}
	if r.Description != nil {
		set["description"] = *r.Description
	}
	if r.Category != nil {
		set["category"] = *r.Category
	}
	if r.ImageURL != nil {
		set["image_url"] = *r.ImageURL
	}
	if r.ThumbnailURL != nil {
		set["thumbnail_url"] = *r.ThumbnailURL
	}
	if r.Order != nil {
		set["order"] = *r.Order
	}
	if r.Featured != nil {
		set["featured"] = *r.Featured
	}
	return set
}
