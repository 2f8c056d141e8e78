package model

type CreateEventDTO struct {
	Title        string  `json:"title"`
	Description  *string `json:"description,omitempty"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	LocationName *string `json:"locationName,omitempty"`
	IsPublic     bool    `json:"isPublic"`
}
