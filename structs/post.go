// Package structs defines the blog post document and its external shape.
package structs

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Author is the author sub-document. Both names are optional.
type Author struct {
	FirstName string `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName  string `bson:"lastName,omitempty" json:"lastName,omitempty"`
}

// FullName joins the first and last name with a single space. Missing parts
// render as empty segments.
func (a Author) FullName() string {
	return a.FirstName + " " + a.LastName
}

// BlogPost is the persisted document.
type BlogPost struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Title   string             `bson:"title" json:"title" validate:"required"`
	Content string             `bson:"content" json:"content" validate:"required"`
	Author  Author             `bson:"author" json:"author"`
	Created *time.Time         `bson:"created,omitempty" json:"created,omitempty"`
}

// ReadBlogPost is the representation returned to API clients.
type ReadBlogPost struct {
	ID      string     `json:"id"`
	Title   string     `json:"title"`
	Content string     `json:"content"`
	Author  string     `json:"author"`
	Created *time.Time `json:"created,omitempty"`
}

// Serialize flattens a document into its client representation.
func (p *BlogPost) Serialize() *ReadBlogPost {
	return &ReadBlogPost{
		ID:      p.ID.Hex(),
		Title:   p.Title,
		Content: p.Content,
		Author:  p.Author.FullName(),
		Created: p.Created,
	}
}

// SerializeAll serializes a list, returning an empty slice rather than nil.
func SerializeAll(posts []*BlogPost) []*ReadBlogPost {
	out := make([]*ReadBlogPost, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Serialize())
	}
	return out
}

// ListBlogPosts is the envelope of the list endpoint.
type ListBlogPosts struct {
	BlogPosts []*ReadBlogPost `json:"blogPosts"`
}

// UpdateBlogPost holds the fields present in an update request. Nil means
// the field was absent and must not be touched. Null lists the fields that
// were sent as JSON null and are stored as null.
type UpdateBlogPost struct {
	Title   *string
	Content *string
	Author  *Author
	Null    []string
}

// IsEmpty reports whether no field is set.
func (u *UpdateBlogPost) IsEmpty() bool {
	return u.Title == nil && u.Content == nil && u.Author == nil && len(u.Null) == 0
}
