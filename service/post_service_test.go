package service

import (
	"context"
	"errors"
	"testing"

	"playlistpulse/models"
	"playlistpulse/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var alice = models.Identity{Email: "alice@test.com", Username: "Alice"}
var bob = models.Identity{Email: "bob@test.com", Username: "Bob"}

func TestCreatePost_Validation(t *testing.T) {
	svc := NewPostService(newFakePostRepo())
	ctx := context.Background()

	tests := []struct {
		name    string
		req     CreatePostRequest
		wantErr bool
	}{
		{
			name:    "empty content and no playlist rejected",
			req:     CreatePostRequest{Content: ""},
			wantErr: true,
		},
		{
			name:    "whitespace content and no playlist rejected",
			req:     CreatePostRequest{Content: "   "},
			wantErr: true,
		},
		{
			name: "content alone succeeds",
			req:  CreatePostRequest{Content: "hello"},
		},
		{
			name: "playlist alone succeeds",
			req:  CreatePostRequest{PlaylistID: "abc", PlaylistName: "Road Trip"},
		},
		{
			name:    "playlist name without id rejected",
			req:     CreatePostRequest{PlaylistName: "Road Trip"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post, err := svc.CreatePost(ctx, alice, tt.req)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.False(t, post.ID.IsZero())
			assert.Equal(t, alice.Email, post.UserEmail)
			assert.Equal(t, alice.Username, post.User)
			assert.NotEmpty(t, post.CreatedAt)
			assert.Zero(t, post.LikeCount)
			assert.Zero(t, post.CommentCount)
			assert.Zero(t, post.ShareCount)
		})
	}
}

func TestCreatePost_KeepsCallerTimestamp(t *testing.T) {
	svc := NewPostService(newFakePostRepo())

	post, err := svc.CreatePost(context.Background(), alice, CreatePostRequest{
		Content:   "hello",
		CreatedAt: "2026-01-02T10:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-01-02T10:00:00Z", post.CreatedAt)
}

func TestListPosts_NewestFirst(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)
	ctx := context.Background()

	for _, ts := range []string{
		"2026-01-01T10:00:00Z",
		"2026-01-03T10:00:00Z",
		"2026-01-02T10:00:00Z",
	} {
		_, err := svc.CreatePost(ctx, alice, CreatePostRequest{Content: "at " + ts, CreatedAt: ts})
		require.NoError(t, err)
	}

	posts, err := svc.ListPosts(ctx, "")
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "2026-01-03T10:00:00Z", posts[0].CreatedAt)
	assert.Equal(t, "2026-01-02T10:00:00Z", posts[1].CreatedAt)
	assert.Equal(t, "2026-01-01T10:00:00Z", posts[2].CreatedAt)
}

func TestListPosts_FilterByUser(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, alice, CreatePostRequest{Content: "from alice"})
	require.NoError(t, err)
	_, err = svc.CreatePost(ctx, bob, CreatePostRequest{Content: "from bob"})
	require.NoError(t, err)

	posts, err := svc.ListPosts(ctx, "Alice")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "from alice", posts[0].Content)
}

func TestDeletePost_OwnershipMerged(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, alice, CreatePostRequest{Content: "mine"})
	require.NoError(t, err)

	// Someone else's delete looks exactly like a missing post.
	err = svc.DeletePost(ctx, bob, post.ID)
	assert.True(t, errors.Is(err, repository.ErrNotFound))

	// And the post is untouched.
	stored, err := repo.FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "mine", stored.Content)

	// The owner's delete succeeds.
	require.NoError(t, svc.DeletePost(ctx, alice, post.ID))
	_, err = repo.FindByID(ctx, post.ID)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestDeletePost_UnknownID(t *testing.T) {
	svc := NewPostService(newFakePostRepo())

	err := svc.DeletePost(context.Background(), alice, primitive.NewObjectID())
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}
