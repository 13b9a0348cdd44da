package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Category    string             `bson:"category" json:"category"`
	Year        string             `bson:"year" json:"year"`
	Description string             `bson:"description" json:"description"`
	Image       string             `bson:"image" json:"image"`
	Tags        []string           `bson:"tags" json:"tags"`
	Featured    bool               `bson:"featured" json:"featured"`
	Order       int                `bson:"order" json:"order"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

type ProjectCreate struct {
	Title       string   `json:"title" binding:"required"`
	Category    string   `json:"category"`
	Year        string   `json:"year"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
	Order       int      `json:"order"`
}

func (r ProjectCreate) Fields() bson.M {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return bson.M{
		"title":       r.Title,
		"category":    r.Category,
		"year":        r.Year,
		"description": r.Description,
		"image":       r.Image,
		"tags":        tags,
		"featured":    r.Featured,
		"order":       r.Order,
	}
}

type ProjectUpdate struct {
	Title       *string   `json:"title,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Year        *string   `json:"year,omitempty"`
	Description *string   `json:"description,omitempty"`
	Image       *string   `json:"image,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	Featured    *bool     `json:"featured,omitempty"`
	Order       *int      `json:"order,omitempty"`
}

func (r ProjectUpdate) SetFields() bson.M {
	set := bson.M{}
	if r.Title != nil {
		set["title"] = *r.Title
	}
	if r.Category != nil {
		set["category"] = *r.Category
	}
	if r.Year != nil {
		set["year"] = *r.Year
	}
	if r.Description != nil {
		set["description"] = *r.Description
	}
	if r.Image != nil {
		set["image"] = *r.Image
	}
	if r.Tags != nil {
		set["tags"] = *r.Tags
	}
	if r.Featured != nil {
		set["featured"] = *r.Featured
	}
	if r.Order != nil {
		set["order"] = *r.Order
	}
	return set
}
