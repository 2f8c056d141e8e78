package model

type CreatePostDTO struct {
	Email   string `json:"email"`
	Message string `json:"postMsg"`
}
