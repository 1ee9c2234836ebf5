package model

type CreatePostDTO struct {
	AuthorUsername string `json:"author_username"`
	Content        string `json:"content"`
}
