package service

import (
	"context"
	"errors"
	"strings"

	"github.com/openjournal/blogd/internal/blog/domain"
	"github.com/openjournal/blogd/internal/blog/store"
	"github.com/openjournal/blogd/pkg/idx"
)

var (
	ErrNotOwner     = errors.New("not_owner")
	ErrMissingField = errors.New("missing_field")
)

// PostService owns post records. Ownership rules live here: only the author
// may update or delete a post. Likes and comments deliberately have no
// ownership check.
type PostService struct {
	Store store.Store
}

// Create persists a new post for the author with likes=0 and no comments.
func (s *PostService) Create(ctx context.Context, title, content, authorID string) (domain.Post, error) {
	title = strings.TrimSpace(title)
	if title == "" || content == "" {
		return domain.Post{}, ErrMissingField
	}

	p := domain.Post{
		ID:      idx.New().String(),
		Title:   title,
		Content: content,
		Author:  authorID,
	}
	if err := s.Store.Posts().CreatePost(ctx, p); err != nil {
		return domain.Post{}, err
	}
	return s.Store.Posts().GetPostByID(ctx, p.ID)
}

// List returns all posts, newest first.
func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	return s.Store.Posts().ListPosts(ctx)
}

// Get returns a single post with its comments.
func (s *PostService) Get(ctx context.Context, id string) (domain.Post, error) {
	return s.Store.Posts().GetPostByID(ctx, id)
}

// Update overwrites title and content after an ownership check. The read
// and the write share a transaction, so a concurrent delete surfaces as
// ErrNotFound rather than resurrecting the row.
func (s *PostService) Update(ctx context.Context, id, callerID, title, content string) (domain.Post, error) {
	title = strings.TrimSpace(title)
	if title == "" || content == "" {
		return domain.Post{}, ErrMissingField
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		p, err := tx.Posts().GetPostByID(ctx, id)
		if err != nil {
			return err
		}
		if p.Author != callerID {
			return ErrNotOwner
		}
		return tx.Posts().UpdatePost(ctx, id, title, content)
	})
	if err != nil {
		return domain.Post{}, err
	}
	return s.Store.Posts().GetPostByID(ctx, id)
}

// Delete removes a post after the same ownership check as Update. Comments
// go with it.
func (s *PostService) Delete(ctx context.Context, id, callerID string) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		p, err := tx.Posts().GetPostByID(ctx, id)
		if err != nil {
			return err
		}
		if p.Author != callerID {
			return ErrNotOwner
		}
		return tx.Posts().DeletePost(ctx, id)
	})
}

// Like increments the post's like counter by one. The increment is a single
// SQL statement, so N concurrent likes always land as +N.
func (s *PostService) Like(ctx context.Context, id string) (domain.Post, error) {
	if err := s.Store.Posts().IncrementLikes(ctx, id); err != nil {
		return domain.Post{}, err
	}
	return s.Store.Posts().GetPostByID(ctx, id)
}

// AddComment appends a comment to the post's list. Existing comments are
// never reordered; the new one always lands at the end.
func (s *PostService) AddComment(ctx context.Context, id, text string) (domain.Post, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Post{}, ErrMissingField
	}

	cid := idx.New()
	c := domain.Comment{
		ID:        cid.String(),
		Text:      text,
		CreatedAt: cid.Time(),
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Posts().GetPostByID(ctx, id); err != nil {
			return err
		}
		return tx.Posts().AddComment(ctx, id, c)
	})
	if err != nil {
		return domain.Post{}, err
	}
	return s.Store.Posts().GetPostByID(ctx, id)
}
