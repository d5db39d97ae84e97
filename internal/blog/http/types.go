package http

import (
	"time"

	"github.com/openjournal/blogd/internal/blog/domain"
)

// PostResponse is the wire shape of a post. Field names follow the JSON
// contract: camelCase, comments inline.
type PostResponse struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	Author    string            `json:"author"`
	Likes     int64             `json:"likes"`
	Comments  []CommentResponse `json:"comments"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

type CommentResponse struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// TokenResponse carries the issued bearer token after login.
type TokenResponse struct {
	Token string `json:"token"`
}

// HealthResponse is the body of the livez/readyz probes.
type HealthResponse struct {
	Status   string `json:"status"`
	Uptime   string `json:"uptime"`
	Version  string `json:"version"`
	Database string `json:"database,omitempty"`
}

func toPostResponse(p domain.Post) PostResponse {
	comments := make([]CommentResponse, 0, len(p.Comments))
	for _, c := range p.Comments {
		comments = append(comments, CommentResponse{Text: c.Text, CreatedAt: c.CreatedAt})
	}
	return PostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Author:    p.Author,
		Likes:     p.Likes,
		Comments:  comments,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toPostResponses(posts []domain.Post) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostResponse(p))
	}
	return out
}
