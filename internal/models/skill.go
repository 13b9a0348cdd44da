package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Skill struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Level     int                `bson:"level" json:"level"` // 0-100
	Years     string             `bson:"years" json:"years"`
	Category  string             `bson:"category" json:"category"`
	Order     int                `bson:"order" json:"order"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

type SkillCreate struct {
	Name string `json:"name" binding:"required"`
	// Level is a pointer so zero stays expressible while the field itself
	// remains mandatory.
	Level    *int   `json:"level" binding:"required,gte=0,lte=100"`
	Years    string `json:"years" binding:"required"`
	Category string `json:"category"`
	Order    int    `json:"order"`
}

func (r SkillCreate) Fields() bson.M {
	category := r.Category
	if category == "" {
		category = "Photography"
	}
	return bson.M{
		"name":     r.Name,
		"level":    *r.Level,
		"years":    r.Years,
		"category": category,
		"order":    r.Order,
	}
}

type SkillUpdate struct {
	Name     *string `json:"name,omitempty"`
	Level    *int    `json:"level,omitempty" binding:"omitempty,gte=0,lte=100"`
	Years    *string `json:"years,omitempty"`
	Category *string `json:"category,omitempty"`
	Order    *int    `json:"order,omitempty"`
}

func (r SkillUpdate) SetFields() bson.M {
	set := bson.M{}
	if r.Name != nil {
		set["name"] = *r.Name
	}
	if r.Level != nil {
		set["level"] = *r.Level
	}
	if r.Years != nil {
		set["years"] = *r.Years
	}
	if r.Category != nil {
		set["category"] = *r.Category
	}
	if r.Order != nil {
		set["order"] = *r.Order
	}
	return set
}
