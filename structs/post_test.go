package structs

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAuthorFullName(t *testing.T) {
	tests := []struct {
		name   string
		author Author
		want   string
	}{
		{"both", Author{FirstName: "Ada", LastName: "Lovelace"}, "Ada Lovelace"},
		{"first only", Author{FirstName: "Ada"}, "Ada "},
		{"last only", Author{LastName: "Lovelace"}, " Lovelace"},
		{"none", Author{}, " "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.author.FullName())
		})
	}
}

func TestSerialize(t *testing.T) {
	id := primitive.NewObjectID()
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	post := &BlogPost{
		ID:      id,
		Title:   "Hello",
		Content: "World",
		Author:  Author{FirstName: "Ada", LastName: "Lovelace"},
		Created: &created,
	}

	got := post.Serialize()
	assert.Equal(t, id.Hex(), got.ID)
	assert.Equal(t, "Hello", got.Title)
	assert.Equal(t, "World", got.Content)
	assert.Equal(t, "Ada Lovelace", got.Author)
	assert.Equal(t, &created, got.Created)
}

func TestSerializeJSONShape(t *testing.T) {
	post := &BlogPost{ID: primitive.NewObjectID(), Title: "t", Content: "c"}

	raw, err := json.Marshal(post.Serialize())
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Len(t, out, 4)
	assert.Contains(t, out, "id")
	assert.Equal(t, " ", out["author"])
	assert.NotContains(t, out, "created")
}

func TestSerializeAllEmpty(t *testing.T) {
	raw, err := json.Marshal(ListBlogPosts{BlogPosts: SerializeAll(nil)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"blogPosts":[]}`, string(raw))
}

func TestUpdateBlogPostIsEmpty(t *testing.T) {
	assert.True(t, (&UpdateBlogPost{}).IsEmpty())

	title := "x"
	assert.False(t, (&UpdateBlogPost{Title: &title}).IsEmpty())
	assert.False(t, (&UpdateBlogPost{Null: []string{"author"}}).IsEmpty())
}
