package models

import "time"

type BlogStatus string

const (
	BlogDraft     BlogStatus = "draft"
	BlogPublished BlogStatus = "published"
)

// BlogPost is an article on the operator's site.
type BlogPost struct {
	ID          string     `bson:"id" json:"id"`
	Title       string     `bson:"title" json:"title"`
	Slug        string     `bson:"slug" json:"slug"`
	Excerpt     string     `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	Body        string     `bson:"body" json:"body"`
	CoverImage  string     `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	Author      string     `bson:"author,omitempty" json:"author,omitempty"`
	Tags        []string   `bson:"tags,omitempty" json:"tags,omitempty"`
	Status      BlogStatus `bson:"status" json:"status"`
	PublishedAt *time.Time `bson:"publishedAt,omitempty" json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
}
