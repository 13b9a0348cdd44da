package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Award struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Organization string             `bson:"organization" json:"organization"`
	Year         string             `bson:"year" json:"year"`
	Description  string             `bson:"description" json:"description"`
	Order        int                `bson:"order" json:"order"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

type AwardCreate struct {
	Title        string `json:"title" binding:"required"`
	Organization string `json:"organization" binding:"required"`
	Year         string `json:"year"`
	Description  string `json:"description"`
	Order        int    `json:"order"`
}

func (r AwardCreate) Fields() bson.M {
	return bson.M{
		"title":        r.Title,
		"organization": r.Organization,
		"year":         r.Year,
		"description":  r.Description,
		"order":        r.Order,
	}
}

type AwardUpdate struct {
	Title        *string `json:"title,omitempty"`
	Organization *string `json:"organization,omitempty"`
	Year         *string `json:"year,omitempty"`
	Description  *string `json:"description,omitempty"`
	Order        *int    `json:"order,omitempty"`
}

func (r AwardUpdate) SetFields() bson.M {
	set := bson.M{}
	if r.Title != nil {
		set["title"] = *r.Title
	}
	if r.Organization != nil {
		set["organization"] = *r.Organization
	}
	if r.Year != nil {
		set["year"] = *r.Year
	}
	if r.Description != nil {
		set["description"] = *r.Description
	}
	if r.Order != nil {
		set["order"] = *r.Order
	}
	return set
}
