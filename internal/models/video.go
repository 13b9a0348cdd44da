package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Video thumbnails and durations are placeholders; generating them is a
// post-processing concern that is not part of this service.
type Video struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Category     string             `bson:"category" json:"category"` // tv-show, interview, behind-scenes, art-direction
	VideoURL     string             `bson:"video_url" json:"video_url"`
	ThumbnailURL string             `bson:"thumbnail_url" json:"thumbnail_url"`
	Duration     int                `bson:"duration" json:"duration"` // seconds
	Order        int                `bson:"order" json:"order"`
	Featured     bool               `bson:"featured" json:"featured"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

type VideoCreate struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Category     string `json:"category" binding:"required"`
	VideoURL     string `json:"video_url" binding:"required"`
	ThumbnailURL string `json:"thumbnail_url"`
	Duration     int    `json:"duration"`
	Order        int    `json:"order"`
	Featured     bool   `json:"featured"`
}

func (r VideoCreate) Fields() bson.M {
	return bson.M{
		"title":         r.Title,
		"description":   r.Description,
		"category":      r.Category,
		"video_url":     r.VideoURL,
		"thumbnail_url": r.ThumbnailURL,
		"duration":      r.Duration,
		"order":         r.Order,
		"featured":      r.Featured,
	}
}

type VideoUpdate struct {
	Title        *string `json:"title,omitempty"`
	Description  *string `json:"description,omitempty"`
	Category     *string `json:"category,omitempty"`
	VideoURL     *string `json:"video_url,omitempty"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty"`
	Duration     *int    `json:"duration,omitempty"`
	Order        *int    `json:"order,omitempty"`
	Featured     *bool   `json:"featured,omitempty"`
}

func (r VideoUpdate) SetFields() bson.M {
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
	if r.VideoURL != nil {
		set["video_url"] = *r.VideoURL
	}
	if r.ThumbnailURL != nil {
		set["thumbnail_url"] = *r.ThumbnailURL
	}
	if r.Duration != nil {
		set["duration"] = *r.Duration
	}
	if r.Order != nil {
		set["order"] = *r.Order
	}
	if r.Featured != nil {
		set["featured"] = *r.Featured
	}
	return set
}
