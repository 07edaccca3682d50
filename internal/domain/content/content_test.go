package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlogPost(t *testing.T) {
	post, err := NewBlogPost("Weaving Traditions", "Weaving-Traditions", "body", "Asha")
	require.NoError(t, err)

	assert.Equal(t, "weaving-traditions", post.Slug)
	assert.False(t, post.Published)

	_, err = NewBlogPost("", "slug", "", "")
	assert.Error(t, err)
}

func TestBlogPost_PublishUnpublish(t *testing.T) {
	post, err := NewBlogPost("Title", "slug", "body", "")
	require.NoError(t, err)

	post.Publish()
	assert.True(t, post.Published)
	require.NotNil(t, post.PublishedAt)
	first := *post.PublishedAt

	// Publishing again keeps the original timestamp
	post.Publish()
	assert.Equal(t, first, *post.PublishedAt)

	post.Unpublish()
	assert.False(t, post.Published)
}

func TestNewTeamMember(t *testing.T) {
	member, err := NewTeamMember("Ravi", "Master Weaver", "", "", 1)
	require.NoError(t, err)
	assert.Equal(t, "Ravi", member.Name)

	_, err = NewTeamMember(" ", "", "", "", 0)
	assert.Error(t, err)
}

func TestNewStore(t *testing.T) {
	store, err := NewStore("Jaipur Flagship", "12 Bazaar Road", "Jaipur", "0141-000000")
	require.NoError(t, err)
	assert.Equal(t, "Jaipur", store.City)

	_, err = NewStore("", "addr", "city", "")
	assert.Error(t, err)
}

func TestNewHeroImage(t *testing.T) {
	hero, err := NewHeroImage("https://cdn.example.com/h1.jpg", "Diwali sale", "/sale", 0)
	require.NoError(t, err)
	assert.True(t, hero.Active)

	_, err = NewHeroImage("", "", "", 0)
	assert.Error(t, err)
}
