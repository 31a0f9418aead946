package db

import (
	"time"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

const (
	RoleEditor = "editor"
	RoleAdmin  = "admin"
)

type Article struct {
	tableName struct{} `pg:"articles,alias:t,discard_unknown_columns"`

	ID         int       `pg:"article_id,pk"`
	Title      string    `pg:"title,use_zero"`
	Slug       string    `pg:"slug,use_zero"`
	Content    string    `pg:"content,use_zero"`
	Excerpt    string    `pg:"excerpt,use_zero"`
	ImageURL   string    `pg:"image_url,use_zero"`
	CategoryID int       `pg:"category_id,use_zero"`
	AuthorID   int       `pg:"author_id,use_zero"`
	Status     string    `pg:"status,use_zero"`
	Featured   bool      `pg:"featured,use_zero"`
	Views      int       `pg:"views,use_zero"`
	CreatedAt  time.Time `pg:"created_at,use_zero"`
	UpdatedAt  time.Time `pg:"updated_at,use_zero"`

	Category *Category `pg:"fk:category_id,rel:has-one"`
	Author   *User     `pg:"fk:author_id,rel:has-one"`
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID          int    `pg:"category_id,pk"`
	Name        string `pg:"name,use_zero"`
	Slug        string `pg:"slug,use_zero"`
	Description string `pg:"description,use_zero"`

	// NewsCount is computed by the categories query, not stored.
	NewsCount int `pg:"news_count,scanonly"`
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID    int    `pg:"user_id,pk"`
	Name  string `pg:"name,use_zero"`
	Email string `pg:"email,use_zero"`
	Role  string `pg:"role,use_zero"`
}

type Session struct {
	tableName struct{} `pg:"sessions,alias:t,discard_unknown_columns"`

	Token     string    `pg:"token,pk"`
	UserID    int       `pg:"user_id,use_zero"`
	ExpiresAt time.Time `pg:"expires_at,use_zero"`

	User *User `pg:"fk:user_id,rel:has-one"`
}
