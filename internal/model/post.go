package model

import "github.com/jackc/pgx/v5/pgtype"

type Post struct {
	ID        int64              `json:"id"`
	Email     string             `json:"email"`
	Message   string             `json:"postMsg"`
	Likes     Likes              `json:"likes"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

// Likes keeps the counter and the membership set together. The repository
// guarantees Count == len(Users) after every conditional update.
type Likes struct {
	Count int32    `json:"count"`
	Users []string `json:"users"`
}
