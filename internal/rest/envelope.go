package rest

import (
	"github.com/labstack/echo/v4"
)

// Meta carries pagination math for list responses.
type Meta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// Envelope is the wire contract shared by every API response. The shape is
// stable: the API client and the mock fallback both produce it unchanged.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Meta    *Meta  `json:"meta,omitempty"`
}

func newMeta(total, limit, offset int) *Meta {
	page := 1
	totalPages := 0
	if limit > 0 {
		page = offset/limit + 1
		totalPages = (total + limit - 1) / limit
	}

	return &Meta{
		Total:      total,
		Page:       page,
		PageSize:   limit,
		TotalPages: totalPages,
	}
}

func respond(c echo.Context, status int, data any) error {
	return c.JSON(status, Envelope{Success: true, Data: data})
}

func respondList(c echo.Context, status int, data any, meta *Meta) error {
	return c.JSON(status, Envelope{Success: true, Data: data, Meta: meta})
}

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{Success: false, Message: message})
}
