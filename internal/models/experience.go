package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Experience struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Company     string             `bson:"company" json:"company"`
	Location    string             `bson:"location" json:"location"`
	Period      string             `bson:"period" json:"period"`
	Type        string             `bson:"type" json:"type"`
	Description string             `bson:"description" json:"description"`
	Highlights  []string           `bson:"highlights" json:"highlights"`
	Order       int                `bson:"order" json:"order"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

type ExperienceCreate struct {
	Title       string   `json:"title" binding:"required"`
	Company     string   `json:"company" binding:"required"`
	Location    string   `json:"location"`
	Period      string   `json:"period"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
	Order       int      `json:"order"`
}

func (r ExperienceCreate) Fields() bson.M {
	highlights := r.Highlights
	if highlights == nil {
		highlights = []string{}
	}
	return bson.M{
		"title":       r.Title,
		"company":     r.Company,
		"location":    r.Location,
		"period":      r.Period,
		"type":        r.Type,
		"description": r.Description,
		"highlights":  highlights,
		"order":       r.Order,
	}
}

type ExperienceUpdate struct {
	Title       *string   `json:"title,omitempty"`
	Company     *string   `json:"company,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Period      *string   `json:"period,omitempty"`
	Type        *string   `json:"type,omitempty"`
	Description *string   `json:"description,omitempty"`
	Highlights  *[]string `json:"highlights,omitempty"`
	Order       *int      `json:"order,omitempty"`
}

func (r ExperienceUpdate) SetFields() bson.M {
	set := bson.M{}
	if r.Title != nil {
		set["title"] = *r.Title
	}
	if r.Company != nil {
		set["company"] = *r.Company
	}
	if r.Location != nil {
		set["location"] = *r.Location
	}
	if r.Period != nil {
		set["period"] = *r.Period
	}
	if r.Type != nil {
		set["type"] = *r.Type
	}
	if r.Description != nil {
		set["description"] = *r.Description
	}
	if r.Highlights != nil {
		set["highlights"] = *r.Highlights
	}
	if r.Order != nil {
		set["order"] = *r.Order
	}
	return set
}
