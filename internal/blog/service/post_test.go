package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/openjournal/blogd/internal/blog/domain"
	"github.com/openjournal/blogd/internal/blog/store"
	"github.com/stretchr/testify/require"
)

func newTestAuthor(t *testing.T, st store.Store, username string) domain.User {
	t.Helper()

	svc := &UserService{Store: st}
	u, err := svc.Register(context.Background(), username, "password123")
	require.NoError(t, err)
	return u
}

func TestPostServiceCreate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	author := newTestAuthor(t, st, "alice")
	svc := &PostService{Store: st}

	t.Run("new posts start with no likes and no comments", func(t *testing.T) {
		p, err := svc.Create(ctx, "First post", "hello world", author.ID)
		require.NoError(t, err)
		require.NotEmpty(t, p.ID)
		require.Equal(t, author.ID, p.Author)
		require.Zero(t, p.Likes)
		require.Empty(t, p.Comments)
		require.False(t, p.CreatedAt.IsZero())
		require.False(t, p.UpdatedAt.IsZero())
	})

	t.Run("rejects missing title or content", func(t *testing.T) {
		_, err := svc.Create(ctx, "", "content", author.ID)
		require.ErrorIs(t, err, ErrMissingField)

		_, err = svc.Create(ctx, "title", "", author.ID)
		require.ErrorIs(t, err, ErrMissingField)
	})
}

func TestPostServiceListNewestFirst(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	author := newTestAuthor(t, st, "alice")
	svc := &PostService{Store: st}

	var ids []string
	for i := 0; i < 5; i++ {
		p, err := svc.Create(ctx, fmt.Sprintf("post %d", i), "content", author.ID)
		require.NoError(t, err)
		ids = append(ids, p.ID)
	}

	posts, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 5)

	// Most recent creation comes back first.
	for i, p := range posts {
		require.Equal(t, ids[len(ids)-1-i], p.ID)
	}
}

func TestPostServiceUpdate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	author := newTestAuthor(t, st, "alice")
	other := newTestAuthor(t, st, "bob")
	svc := &PostService{Store: st}

	p, err := svc.Create(ctx, "original", "original content", author.ID)
	require.NoError(t, err)

	t.Run("author may update", func(t *testing.T) {
		updated, err := svc.Update(ctx, p.ID, author.ID, "revised", "revised content")
		require.NoError(t, err)
		require.Equal(t, "revised", updated.Title)
		require.Equal(t, "revised content", updated.Content)
		require.Equal(t, p.ID, updated.ID)
	})

	t.Run("non-author is rejected and nothing changes", func(t *testing.T) {
		_, err := svc.Update(ctx, p.ID, other.ID, "hijacked", "hijacked content")
		require.ErrorIs(t, err, ErrNotOwner)

		current, err := svc.Get(ctx, p.ID)
		require.NoError(t, err)
		require.Equal(t, "revised", current.Title)
	})

	t.Run("unknown post is not found", func(t *testing.T) {
		_, err := svc.Update(ctx, "no-such-post", author.ID, "t", "c")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		_, err := svc.Update(ctx, p.ID, author.ID, "", "c")
		require.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("update after delete does not resurrect the post", func(t *testing.T) {
		doomed, err := svc.Create(ctx, "short-lived", "content", author.ID)
		require.NoError(t, err)
		require.NoError(t, svc.Delete(ctx, doomed.ID, author.ID))

		_, err = svc.Update(ctx, doomed.ID, author.ID, "back from the dead", "content")
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = svc.Get(ctx, doomed.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		posts, err := svc.List(ctx)
		require.NoError(t, err)
		for _, got := range posts {
			require.NotEqual(t, doomed.ID, got.ID)
		}
	})
}

func TestPostServiceDelete(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	author := newTestAuthor(t, st, "alice")
	other := newTestAuthor(t, st, "bob")
	svc := &PostService{Store: st}

	p, err := svc.Create(ctx, "doomed", "content", author.ID)
	require.NoError(t, err)

	_, err = svc.AddComment(ctx, p.ID, "a comment that goes down with the post")
	require.NoError(t, err)

	t.Run("non-author cannot delete", func(t *testing.T) {
		require.ErrorIs(t, svc.Delete(ctx, p.ID, other.ID), ErrNotOwner)
	})

	t.Run("author deletes post and its comments", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, p.ID, author.ID))

		_, err := svc.Get(ctx, p.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("deleting twice is not found", func(t *testing.T) {
		require.ErrorIs(t, svc.Delete(ctx, p.ID, author.ID), store.ErrNotFound)
	})
}

func TestPostServiceLike(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	author := newTestAuthor(t, st, "alice")
	svc := &PostService{Store: st}

	p, err := svc.Create(ctx, "likeable", "content", author.ID)
	require.NoError(t, err)

	t.Run("anyone may like, repeatedly", func(t *testing.T) {
		first, err := svc.Like(ctx, p.ID)
		require.NoError(t, err)
		require.EqualValues(t, 1, first.Likes)

		second, err := svc.Like(ctx, p.ID)
		require.NoError(t, err)
		require.EqualValues(t, 2, second.Likes)
	})

	t.Run("concurrent likes all land", func(t *testing.T) {
		before, err := svc.Get(ctx, p.ID)
		require.NoError(t, err)

		const n = 20
		var wg sync.WaitGroup
		errs := make(chan error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.Like(ctx, p.ID)
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		after, err := svc.Get(ctx, p.ID)
		require.NoError(t, err)
		require.Equal(t, before.Likes+n, after.Likes)
	})

	t.Run("unknown post is not found", func(t *testing.T) {
		_, err := svc.Like(ctx, "no-such-post")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestPostServiceAddComment(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	author := newTestAuthor(t, st, "alice")
	svc := &PostService{Store: st}

	p, err := svc.Create(ctx, "discussed", "content", author.ID)
	require.NoError(t, err)

	t.Run("comments keep arrival order", func(t *testing.T) {
		for i := 0; i < 4; i++ {
			_, err := svc.AddComment(ctx, p.ID, fmt.Sprintf("comment %d", i))
			require.NoError(t, err)
		}

		got, err := svc.Get(ctx, p.ID)
		require.NoError(t, err)
		require.Len(t, got.Comments, 4)
		for i, c := range got.Comments {
			require.Equal(t, fmt.Sprintf("comment %d", i), c.Text)
			require.False(t, c.CreatedAt.IsZero())
		}
	})

	t.Run("rejects empty text", func(t *testing.T) {
		_, err := svc.AddComment(ctx, p.ID, "   ")
		require.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("unknown post is not found", func(t *testing.T) {
		_, err := svc.AddComment(ctx, "no-such-post", "hello?")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}
