package rest

import "time"

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
	Status       string    `json:"status"`
	Featured     bool      `json:"featured"`
	Views        int       `json:"views"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	NewsCount   int    `json:"newsCount"`
}

// NewsDetail is the payload of the slug detail endpoint.
type NewsDetail struct {
	Article Article   `json:"article"`
	Related []Article `json:"related"`
}

// Created is the payload of a successful POST.
type Created struct {
	ID int `json:"id"`
}

// ArticleInput is the write-path request body.
type ArticleInput struct {
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Content    string `json:"content"`
	Excerpt    string `json:"excerpt"`
	ImageURL   string `json:"imageUrl"`
	CategoryID int    `json:"categoryId"`
	Status     string `json:"status"`
	Featured   bool   `json:"featured"`
}

type NewsRequest struct {
	Limit      *int   `query:"limit"`
	Offset     *int   `query:"offset"`
	CategoryID *int   `query:"categoryId"`
	Featured   *bool  `query:"featured"`
	Search     string `query:"search"`
	Exclude    *int   `query:"exclude"`
}
