package models

// Запросы и ответы REST-слоя.

// CreateCommentRequest — тело POST /comments.
type CreateCommentRequest struct {
	UserID Ref    `json:"userId"`
	PostID Ref    `json:"postId"`
	Body   string `json:"body"`
}

// UpdateCommentRequest — тело PATCH /comments/{id}.
type UpdateCommentRequest struct {
	Body string `json:"body"`
}

type ListCommentsResponse struct {
	Comments []Comment `json:"comments"`
}

type GetCommentResponse struct {
	Comment *Comment `json:"comment"`
}

type UpdateCommentResponse struct {
	UpdatedComment *Comment `json:"updatedComment"`
}

type DeleteCommentResponse struct {
	Message string `json:"message"`
}
