package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PersonalInfo is a singleton: exactly one document is expected, seeded at
// startup.
type PersonalInfo struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Title    string             `bson:"title" json:"title"`
	Tagline  string             `bson:"tagline" json:"tagline"`
	Subtitle string             `bson:"subtitle" json:"subtitle"`
	Email    string             `bson:"email" json:"email"`
	Phone    string             `bson:"phone" json:"phone"`
	Location string             `bson:"location" json:"location"`
	Bio      string             `bson:"bio" json:"bio"`
	Quote    string             `bson:"quote" json:"quote"`
	Book     string             `bson:"book" json:"book"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

type PersonalInfoUpdate struct {
	Name     *string `json:"name,omitempty"`
	Title    *string `json:"title,omitempty"`
	Tagline  *string `json:"tagline,omitempty"`
	Subtitle *string `json:"subtitle,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Quote    *string `json:"quote,omitempty"`
	Book     *string `json:"book,omitempty"`
}

func (r PersonalInfoUpdate) SetFields() bson.M {
	set := bson.M{}
	if r.Name != nil {
		set["name"] = *r.Name
	}
	if r.Title != nil {
		set["title"] = *r.Title
	}
	if r.Tagline != nil {
		set["tagline"] = *r.Tagline
	}
	if r.Subtitle != nil {
		set["subtitle"] = *r.Subtitle
	}
	if r.Email != nil {
		set["email"] = *r.Email
	}
	if r.Phone != nil {
		set["phone"] = *r.Phone
	}
	if r.Location != nil {
		set["location"] = *r.Location
	}
	if r.Bio != nil {
		set["bio"] = *r.Bio
	}
	if r.Quote != nil {
		set["quote"] = *r.Quote
	}
	if r.Book != nil {
		set["book"] = *r.Book
	}
	return set
}
