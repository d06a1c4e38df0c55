package models_test

import (
	"testing"

	"monacowatch/internal/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestWatchToOut_DefaultsForSparseDocument(t *testing.T) {
	// A legacy document carrying only a name must still project cleanly.
	watch := models.Watch{
		ID:   primitive.NewObjectID(),
		Name: "Bare Legacy Watch",
	}

	out := watch.ToOut()

	assert.Equal(t, watch.ID.Hex(), out.ID)
	assert.Equal(t, "Bare Legacy Watch", out.Name)
	assert.Equal(t, 0.0, out.Price)
	assert.Equal(t, "USD", out.Currency)
	assert.True(t, out.InStock)
	assert.False(t, out.Featured)
	assert.NotNil(t, out.Images)
	assert.Empty(t, out.Images)
	assert.NotNil(t, out.Complications)
	assert.Empty(t, out.Complications)
	assert.Nil(t, out.Description)
	assert.Nil(t, out.Thumbnail)
	assert.Nil(t, out.Rating)
}

func TestWatchToOut_PreservesStoredFields(t *testing.T) {
	watch := models.DemoWatches[0]
	watch.ID = primitive.NewObjectID()

	out := watch.ToOut()

	assert.Equal(t, "Monaco Heritage Chronograph", out.Name)
	assert.Equal(t, "Monaco Watch Co.", out.Brand)
	assert.Equal(t, 9200.0, out.Price)
	assert.Equal(t, "USD", out.Currency)
	assert.True(t, out.Featured)
	assert.True(t, out.InStock)
	assert.Len(t, out.Images, 2)
	assert.Equal(t, []string{"Chronograph", "Date"}, out.Complications)
	if assert.NotNil(t, out.Rating) {
		assert.Equal(t, 4.8, *out.Rating)
	}
}

func TestWatchToOut_ExplicitOutOfStockSurvives(t *testing.T) {
	inStock := false
	watch := models.Watch{Name: "Sold Out", InStock: &inStock}

	out := watch.ToOut()

	assert.False(t, out.InStock)
}

func TestBlogPostToOut_Defaults(t *testing.T) {
	post := models.BlogPost{
		ID:      primitive.NewObjectID(),
		Slug:    "legacy-post",
		Title:   "Legacy Post",
		Excerpt: "An old document without locale or tags.",
		Content: "Body",
	}

	out := post.ToOut()

	assert.Equal(t, post.ID.Hex(), out.ID)
	assert.Equal(t, "en", out.Locale)
	assert.NotNil(t, out.Tags)
	assert.Empty(t, out.Tags)
	assert.Nil(t, out.HeroImage)
}

func TestDemoFixtures(t *testing.T) {
	assert.Len(t, models.DemoWatches, 3)

	germanPosts := 0
	for _, p := range models.DemoBlogPosts {
		if p.Locale == "de" {
			germanPosts++
			assert.Equal(t, "uhrmacherkunst-in-monaco", p.Slug)
		}
	}
	assert.Equal(t, 1, germanPosts)
}
