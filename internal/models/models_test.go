package models

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func TestSkillUpdateSetFieldsOnlyPresent(t *testing.T) {
	set := SkillUpdate{Level: intPtr(98)}.SetFields()
	require.Equal(t, bson.M{"level": 98}, set)
}

func TestSkillUpdateSetFieldsEmpty(t *testing.T) {
	require.Empty(t, SkillUpdate{}.SetFields())
}

func TestSkillUpdatePresentButEmptyString(t *testing.T) {
	// Present-but-empty is a real write, distinct from absent.
	set := SkillUpdate{Years: strPtr("")}.SetFields()
	require.Equal(t, bson.M{"years": ""}, set)
}

func TestSkillCreateDefaultsCategory(t *testing.T) {
	fields := SkillCreate{Name: "Portrait Photography", Level: intPtr(95), Years: "25+ years"}.Fields()
	require.Equal(t, "Photography", fields["category"])

	fields = SkillCreate{Name: "Film Direction", Level: intPtr(88), Years: "30+ years", Category: "Film"}.Fields()
	require.Equal(t, "Film", fields["category"])
}

func TestExperienceCreateDefaultsHighlights(t *testing.T) {
	fields := ExperienceCreate{Title: "Director", Company: "Peterson Productions"}.Fields()
	require.Equal(t, []string{}, fields["highlights"])
}

func TestProjectUpdateSetFields(t *testing.T) {
	set := ProjectUpdate{
		Featured: boolPtr(true),
		Tags:     &[]string{"fashion", "editorial"},
	}.SetFields()
	require.Equal(t, bson.M{"featured": true, "tags": []string{"fashion", "editorial"}}, set)
}

func TestVideoUpdateSetFields(t *testing.T) {
	set := VideoUpdate{Duration: intPtr(90), ThumbnailURL: strPtr("/api/uploads/thumbnails/t.jpg")}.SetFields()
	require.Equal(t, bson.M{"duration": 90, "thumbnail_url": "/api/uploads/thumbnails/t.jpg"}, set)
}

func TestPersonalInfoUpdateSetFields(t *testing.T) {
	set := PersonalInfoUpdate{Name: strPtr("Curtis Williams Jr."), Bio: strPtr("")}.SetFields()
	require.Equal(t, bson.M{"name": "Curtis Williams Jr.", "bio": ""}, set)
}
