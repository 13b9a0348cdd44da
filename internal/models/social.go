package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SocialLinks is a singleton like PersonalInfo.
type SocialLinks struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Website   string             `bson:"website" json:"website"`
	Magazine  string             `bson:"magazine" json:"magazine"`
	Facebook  string             `bson:"facebook" json:"facebook"`
	LinkedIn  string             `bson:"linkedin" json:"linkedin"`
	Instagram string             `bson:"instagram" json:"instagram"`
	Twitter   string             `bson:"twitter" json:"twitter"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

type SocialLinksUpdate struct {
	Website   *string `json:"website,omitempty"`
	Magazine  *string `json:"magazine,omitempty"`
	Facebook  *string `json:"facebook,omitempty"`
	LinkedIn  *string `json:"linkedin,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
	Twitter   *string `json:"twitter,omitempty"`
}

func (r SocialLinksUpdate) SetFields() bson.M {
	set := bson.M{}
	if r.Website != nil {
		set["website"] = *r.Website
	}
	if r.Magazine != nil {
		set["magazine"] = *r.Magazine
	}
	if r.Facebook != nil {
		set["facebook"] = *r.Facebook
	}
	if r.LinkedIn != nil {
		set["linkedin"] = *r.LinkedIn
	}
	if r.Instagram != nil {
		set["instagram"] = *r.Instagram
	}
	if r.Twitter != nil {
		set["twitter"] = *r.Twitter
	}
	return set
}
