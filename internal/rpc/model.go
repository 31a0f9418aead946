package rpc

import (
	"time"

	"github.com/surfjournal/backend/internal/surfjournal"
)

type ListFilter struct {
	CategoryID *int    `json:"categoryId"`
	Featured   *bool   `json:"featured"`
	Search     *string `json:"search"`
	Limit      *int    `json:"limit"`
	Offset     *int    `json:"offset"`
}

func (f ListFilter) toDomain() surfjournal.Filter {
	filter := surfjournal.Filter{
		CategoryID: f.CategoryID,
		Featured:   f.Featured,
	}

	if f.Search != nil {
		filter.Search = *f.Search
	}
	if f.Limit != nil {
		filter.Limit = *f.Limit
	}
	if f.Offset != nil {
		filter.Offset = *f.Offset
	}

	return filter
}

type Article struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Content      string    `json:"content,omitempty"`
	Excerpt      string    `json:"excerpt"`
	ImageURL     string    `json:"imageUrl"`
	CategoryID   int       `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	Author       string    `json:"author"`
	Featured     bool      `json:"featured"`
	Views        int       `json:"views"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	NewsCount   int    `json:"newsCount"`
}

type ArticlePage struct {
	Items []Article `json:"items"`
	Total int       `json:"total"`
}
