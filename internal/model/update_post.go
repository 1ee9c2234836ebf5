package model

type UpdatePostDTO struct {
	Content *string `json:"content,omitempty"`
}
