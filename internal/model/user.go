package model

import "github.com/jackc/pgx/v5/pgtype"

type User struct {
	ID           int64              `json:"id"`
	Username     string             `json:"username"`
	Email        string             `json:"email"`
	PasswordHash string             `json:"-"`
	AvatarRef    *string            `json:"profilePic,omitempty"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
}
