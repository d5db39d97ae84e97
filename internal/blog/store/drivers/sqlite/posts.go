package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/openjournal/blogd/internal/blog/domain"
	"github.com/openjournal/blogd/internal/blog/store"
)

type postsRepo struct {
	q queryer
}

func (r *postsRepo) CreatePost(ctx context.Context, p domain.Post) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO posts (id, title, content, author, likes, created_at, updated_at)
		VALUES (?, ?, ?, ?, 0, ?, ?)`,
		p.ID, p.Title, p.Content, p.Author, now, now,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}

func (r *postsRepo) GetPostByID(ctx context.Context, id string) (domain.Post, error) {
	var p domain.Post
	err := r.q.QueryRowContext(ctx, `
		SELECT id, title, content, author, likes, created_at, updated_at
		FROM posts WHERE id = ?`, id).
		Scan(&p.ID, &p.Title, &p.Content, &p.Author, &p.Likes, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Post{}, mapNotFound(err)
	}

	p.Comments, err = r.commentsFor(ctx, id)
	if err != nil {
		return domain.Post{}, err
	}
	return p, nil
}

// ListPosts returns every post newest first. The ULID id breaks created_at
// ties so the ordering stays total.
func (r *postsRepo) ListPosts(ctx context.Context) ([]domain.Post, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, title, content, author, likes, created_at, updated_at
		FROM posts ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]domain.Post, 0)
	index := make(map[string]int)
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.Author, &p.Likes, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		p.Comments = []domain.Comment{}
		index[p.ID] = len(posts)
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	crows, err := r.q.QueryContext(ctx, `
		SELECT post_id, id, text, created_at
		FROM comments ORDER BY post_id, id`)
	if err != nil {
		return nil, err
	}
	defer crows.Close()

	for crows.Next() {
		var postID string
		var c domain.Comment
		if err := crows.Scan(&postID, &c.ID, &c.Text, &c.CreatedAt); err != nil {
			return nil, err
		}
		if i, ok := index[postID]; ok {
			posts[i].Comments = append(posts[i].Comments, c)
		}
	}
	return posts, crows.Err()
}

func (r *postsRepo) UpdatePost(ctx context.Context, id, title, content string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE posts SET title = ?, content = ?, updated_at = ? WHERE id = ?`,
		title, content, time.Now().UTC(), id,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *postsRepo) DeletePost(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// IncrementLikes bumps the counter in a single statement so concurrent likes
// never read-modify-write over each other.
func (r *postsRepo) IncrementLikes(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE posts SET likes = likes + 1, updated_at = ? WHERE id = ?`,
		time.Now().UTC(), id,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *postsRepo) AddComment(ctx context.Context, postID string, c domain.Comment) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO comments (id, post_id, text, created_at)
		VALUES (?, ?, ?, ?)`,
		c.ID, postID, c.Text, c.CreatedAt.UTC(),
	)
	if err != nil {
		return mapConstraint(err)
	}

	res, err := r.q.ExecContext(ctx, `
		UPDATE posts SET updated_at = ? WHERE id = ?`,
		time.Now().UTC(), postID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *postsRepo) commentsFor(ctx context.Context, postID string) ([]domain.Comment, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, text, created_at
		FROM comments WHERE post_id = ? ORDER BY id`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]domain.Comment, 0)
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.Text, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
