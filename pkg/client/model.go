package client

import "time"

// Wire shapes, mirroring the server envelope field-for-field.

type Meta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
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

type NewsDetail struct {
	Article Article   `json:"article"`
	Related []Article `json:"related"`
}

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

type NewsResponse struct {
	Success bool      `json:"success"`
	Data    []Article `json:"data"`
	Message string    `json:"message,omitempty"`
	Meta    *Meta     `json:"meta,omitempty"`
}

type DetailResponse struct {
	Success bool       `json:"success"`
	Data    NewsDetail `json:"data"`
	Message string     `json:"message,omitempty"`
}

type CategoriesResponse struct {
	Success bool       `json:"success"`
	Data    []Category `json:"data"`
	Message string     `json:"message,omitempty"`
}

type CreateResponse struct {
	Success bool `json:"success"`
	Data    struct {
		ID int `json:"id"`
	} `json:"data"`
	Message string `json:"message,omitempty"`
}

type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
