package surfjournal

import (
	"time"
)

type Article struct {
	ID           int
	Title        string
	Slug         string
	Content      string
	Excerpt      string
	ImageURL     string
	CategoryID   int
	CategoryName string
	AuthorID     int
	AuthorName   string
	Status       string
	Featured     bool
	Views        int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Category struct {
	ID          int
	Name        string
	Slug        string
	Description string
	NewsCount   int
}

// ArticleDraft carries the mutable fields of an article for the write path.
// Status defaults to draft when empty.
type ArticleDraft struct {
	Title      string
	Slug       string
	Content    string
	Excerpt    string
	ImageURL   string
	CategoryID int
	AuthorID   int
	Status     string
	Featured   bool
}

// Filter narrows article listings. Zero Limit means the default page size.
type Filter struct {
	CategoryID *int
	Featured   *bool
	Search     string
	ExcludeID  *int
	Limit      int
	Offset     int
}

// ArticlePage is a listing slice plus the total matching the filter
// regardless of limit/offset.
type ArticlePage struct {
	Items []Article
	Total int
}
