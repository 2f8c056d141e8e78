package model

import "github.com/jackc/pgx/v5/pgtype"

type Event struct {
	ID           int64              `json:"id"`
	Title        string             `json:"title"`
	Description  *string            `json:"description,omitempty"`
	Date         string             `json:"date"`
	Time         string             `json:"time"`
	LocationName *string            `json:"locationName,omitempty"`
	IsPublic     bool               `json:"isPublic"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
}
