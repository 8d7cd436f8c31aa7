package timeline_http

import (
	model "timeline-service/internal/domain/models"
)

const createdAtLayout = "2006-01-02 15:04:05"

type LoginRequest struct {
	Username string `json:"username" form:"username"`
}

type CreatePostRequest struct {
	Content string `json:"content" form:"content"`
}

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type LoginResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}

type AuthCheckResponse struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
}

type PostResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type CreatePostResponse struct {
	Success bool         `json:"success"`
	Post    PostResponse `json:"post"`
}

// TimelineResponse carries Count as the length of Posts, not the table size.
type TimelineResponse struct {
	Posts []PostResponse `json:"posts"`
	Count int            `json:"count"`
}

type PostCountResponse struct {
	Count int64 `json:"count"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewPostResponse(post *model.Post) PostResponse {
	return PostResponse{
		ID:        post.ID,
		UserID:    post.UserID,
		Username:  post.Username,
		Content:   post.Content,
		CreatedAt: post.CreatedAt.Format(createdAtLayout),
	}
}

func NewTimelineResponse(posts []*model.Post) TimelineResponse {
	resp := TimelineResponse{Posts: make([]PostResponse, 0, len(posts))}
	for _, p := range posts {
		if p == nil {
			continue
		}
		resp.Posts = append(resp.Posts, NewPostResponse(p))
	}
	resp.Count = len(resp.Posts)
	return resp
}
