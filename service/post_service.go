package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"playlistpulse/models"
	"playlistpulse/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreatePostRequest struct {
	Content       string `json:"content"`
	CreatedAt     string `json:"createdAt"`
	PlaylistID    string `json:"playlistId"`
	PlaylistName  string `json:"playlistName"`
	PlaylistImage string `json:"playlistImage"`
	Location      string `json:"location"`
}

type PostService interface {
	ListPosts(ctx context.Context, user string) ([]models.Post, error)
	CreatePost(ctx context.Context, identity models.Identity, req CreatePostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, identity models.Identity, postID primitive.ObjectID) error
}

type postService struct {
	posts repository.PostRepository
}

func NewPostService(posts repository.PostRepository) PostService {
	return &postService{posts: posts}
}

func (s *postService) ListPosts(ctx context.Context, user string) ([]models.Post, error) {
	return s.posts.List(ctx, user)
}

func (s *postService) CreatePost(ctx context.Context, identity models.Identity, req CreatePostRequest) (*models.Post, error) {
	if strings.TrimSpace(req.Content) == "" && req.PlaylistID == "" {
		return nil, fmt.Errorf("%w: content or playlistId is required", ErrValidation)
	}
	// Playlist attachment fields travel together.
	if req.PlaylistID == "" && (req.PlaylistName != "" || req.PlaylistImage != "") {
		return nil, fmt.Errorf("%w: playlist fields require playlistId", ErrValidation)
	}

	createdAt := req.CreatedAt
	if createdAt == "" {
		createdAt = time.Now().UTC().Format(time.RFC3339)
	}

	post := &models.Post{
		Content:       req.Content,
		User:          identity.Username,
		UserEmail:     identity.Email,
		CreatedAt:     createdAt,
		PlaylistID:    req.PlaylistID,
		PlaylistName:  req.PlaylistName,
		PlaylistImage: req.PlaylistImage,
		Location:      req.Location,
	}

	if err := s.posts.Insert(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost relies on the repository's single guarded delete, so a post
// owned by someone else is reported exactly like a missing one.
func (s *postService) DeletePost(ctx context.Context, identity models.Identity, postID primitive.ObjectID) error {
	return s.posts.DeleteOwned(ctx, postID, identity.Email)
}
