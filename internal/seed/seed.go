package seed

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	mongorepo "github.com/melroseheights/portfolio-backend/internal/repositories/mongo"
)

// EnsureDefaults populates empty collections with the site's default
// content. Safe to run on every start: a collection with any documents is
// left alone.
func EnsureDefaults(ctx context.Context, db *mongo.Database, log *logrus.Logger) error {
	now := time.Now().UTC()

	if err := seedOne(ctx, db, mongorepo.ColPersonalInfo, []any{bson.M{
		"name":     "Curtis Williams Jr.",
		"title":    "FOTOGRAF",
		"tagline":  "LET IT BE AMAZING",
		"subtitle": "Advertising Photographer, Film Producer & Director",
		"email":    "melroseheights@me.com",
		"phone":    "310-880-2341",
		"location": "Los Angeles, CA",
		"bio": "Curtis Williams has worked as an advertising photographer, film producer and director. " +
			"However, his true love is design and photography, a field in which he has accumulated more " +
			"than thirty years of experience.",
		"quote":      "Light is the essence of life, and through my lens, I capture the soul that lives within every frame.",
		"book":       "Light The Essence Of Life",
		"created_at": now,
		"updated_at": now,
	}}, log); err != nil {
		return err
	}

	if err := seedOne(ctx, db, mongorepo.ColSocialLinks, []any{bson.M{
		"website":    "curtiswilliamsphotograph.com",
		"magazine":   "www.melroseheightsmagazinetv.com",
		"facebook":   "https://www.facebook.com/curtiswilliamsphotographyla",
		"linkedin":   "https://linkedin.com/in/curtis-williams-a5262",
		"instagram":  "https://www.instagram.com/",
		"twitter":    "https://twitter.com/",
		"created_at": now,
		"updated_at": now,
	}}, log); err != nil {
		return err
	}

	skills := []any{
		skillDoc("Fine Art Photography", 95, "50+ years", "Photography", 1, now),
		skillDoc("Fashion Photography", 98, "50+ years", "Photography", 2, now),
		skillDoc("Commercial Photography", 92, "45+ years", "Photography", 3, now),
		skillDoc("Film Direction", 88, "30+ years", "Film", 4, now),
		skillDoc("Film Production", 90, "35+ years", "Film", 5, now),
		skillDoc("Digital Post-Production", 85, "25+ years", "Digital", 6, now),
		skillDoc("Darkroom Techniques", 95, "50+ years", "Photography", 7, now),
		skillDoc("Fashion Styling", 87, "40+ years", "Creative", 8, now),
	}
	if err := seedOne(ctx, db, mongorepo.ColSkills, skills, log); err != nil {
		return err
	}

	awards := []any{
		bson.M{
			"title":        "Junior Academy Award",
			"organization": "Academy of Motion Picture Arts and Sciences",
			"year":         "1976",
			"description":  "Recognized for excellence in film and photography at age 22",
			"order":        1,
			"created_at":   now,
			"updated_at":   now,
		},
		bson.M{
			"title":        "VIVA Magazine Feature",
			"organization": "VIVA Magazine",
			"year":         "1976",
			"description":  "Featured as 'an artist of our time' with techniques compared to 'seventeenth-century masters'",
			"order":        2,
			"created_at":   now,
			"updated_at":   now,
		},
	}
	return seedOne(ctx, db, mongorepo.ColAwards, awards, log)
}

func seedOne(ctx context.Context, db *mongo.Database, collection string, docs []any, log *logrus.Logger) error {
	col := db.Collection(collection)

	n, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	if _, err := col.InsertMany(ctx, docs); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"collection": collection, "count": len(docs)}).Info("seeded default documents")
	return nil
}

func skillDoc(name string, level int, years, category string, order int, now time.Time) bson.M {
	return bson.M{
		"name":       name,
		"level":      level,
		"years":      years,
		"category":   category,
		"order":      order,
		"created_at": now,
		"updated_at": now,
	}
}
