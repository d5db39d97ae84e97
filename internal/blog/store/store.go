package store

import (
	"context"
	"errors"

	"github.com/openjournal/blogd/internal/blog/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement this. It exposes sub-repositories to keep concerns
// tidy and testable.
type Store interface {
	Users() Users
	Posts() Posts

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to run multi-step operations that must be atomic
	// (ownership-checked update/delete, comment append).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the username is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during login.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// UpdatePasswordHash sets the password_hash and bumps updated_at. The
	// value must already be hashed; the service layer owns hashing.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error
}

type Posts interface {
	// CreatePost inserts a new post with likes=0 and no comments.
	CreatePost(ctx context.Context, p domain.Post) error

	// GetPostByID returns the post with its comments in append order.
	GetPostByID(ctx context.Context, id string) (domain.Post, error)

	// ListPosts returns all posts with comments, newest first. The post id
	// breaks created_at ties so the order stays total.
	ListPosts(ctx context.Context) ([]domain.Post, error)

	// UpdatePost overwrites title and content and bumps updated_at. Other
	// fields are untouched.
	UpdatePost(ctx context.Context, id, title, content string) error

	// DeletePost removes the post; comments cascade.
	DeletePost(ctx context.Context, id string) error

	// IncrementLikes atomically adds 1 to the like counter in a single
	// statement. Concurrent calls must not lose updates.
	IncrementLikes(ctx context.Context, id string) error

	// AddComment appends a comment row to the post and bumps updated_at.
	AddComment(ctx context.Context, postID string, c domain.Comment) error
}
