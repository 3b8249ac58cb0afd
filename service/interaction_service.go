package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"playlistpulse/models"
	"playlistpulse/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ActionAdded   = "added"
	ActionRemoved = "removed"
)

type ToggleLikeResult struct {
	Action    string `json:"action"`
	LikeCount int    `json:"likeCount"`
}

// LikeSummary reports the like state of a post for one caller. Count is the
// length of the interaction list, not the post's stored likeCount; the log
// is the authoritative source.
type LikeSummary struct {
	Count        int                  `json:"count"`
	UserLiked    bool                 `json:"userLiked"`
	Interactions []models.Interaction `json:"interactions"`
}

type InteractionService interface {
	ToggleLike(ctx context.Context, identity models.Identity, postID primitive.ObjectID) (*ToggleLikeResult, error)
	AddComment(ctx context.Context, identity models.Identity, postID primitive.ObjectID, content string) (*models.Interaction, error)
	AddShare(ctx context.Context, identity models.Identity, postID primitive.ObjectID) (*models.Interaction, error)
	ListInteractions(ctx context.Context, postID primitive.ObjectID, interactionType string) ([]models.Interaction, error)
	LikeStatus(ctx context.Context, identity models.Identity, postID primitive.ObjectID) (*LikeSummary, error)
}

type interactionService struct {
	posts        repository.PostRepository
	interactions repository.InteractionRepository
}

func NewInteractionService(posts repository.PostRepository, interactions repository.InteractionRepository) InteractionService {
	return &interactionService{posts: posts, interactions: interactions}
}

// ToggleLike flips the like state for (postID, caller). The interaction
// write and the counter update are two separate operations with no
// transaction between them; two concurrent toggles from the same user can
// both observe "absent" and double-insert. Accepted limitation, see the
// reconciler for counter realignment.
func (s *interactionService) ToggleLike(ctx context.Context, identity models.Identity, postID primitive.ObjectID) (*ToggleLikeResult, error) {
	existing, err := s.interactions.FindLike(ctx, postID, identity.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	result := &ToggleLikeResult{}
	if existing != nil {
		if err := s.interactions.Delete(ctx, existing.ID); err != nil {
			return nil, err
		}
		if err := s.posts.IncCounter(ctx, postID, "likeCount", -1); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		result.Action = ActionRemoved
	} else {
		if _, err := s.posts.FindByID(ctx, postID); err != nil {
			return nil, err
		}
		like := &models.Interaction{
			PostID:    postID,
			Type:      models.InteractionLike,
			UserEmail: identity.Email,
			Username:  identity.Username,
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		}
		if err := s.interactions.Insert(ctx, like); err != nil {
			return nil, err
		}
		if err := s.posts.IncCounter(ctx, postID, "likeCount", 1); err != nil {
			return nil, err
		}
		result.Action = ActionAdded
	}

	if post, err := s.posts.FindByID(ctx, postID); err == nil {
		result.LikeCount = post.LikeCount
	}
	return result, nil
}

func (s *interactionService) AddComment(ctx context.Context, identity models.Identity, postID primitive.ObjectID, content string) (*models.Interaction, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: comment content is required", ErrValidation)
	}

	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &models.Interaction{
		PostID:    postID,
		Type:      models.InteractionComment,
		UserEmail: identity.Email,
		Username:  identity.Username,
		Content:   content,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.interactions.Insert(ctx, comment); err != nil {
		return nil, err
	}
	if err := s.posts.IncCounter(ctx, postID, "commentCount", 1); err != nil {
		return nil, err
	}
	return comment, nil
}

// AddShare has no uniqueness constraint: the same user may share the same
// post any number of times.
func (s *interactionService) AddShare(ctx context.Context, identity models.Identity, postID primitive.ObjectID) (*models.Interaction, error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	share := &models.Interaction{
		PostID:    postID,
		Type:      models.InteractionShare,
		UserEmail: identity.Email,
		Username:  identity.Username,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.interactions.Insert(ctx, share); err != nil {
		return nil, err
	}
	if err := s.posts.IncCounter(ctx, postID, "shareCount", 1); err != nil {
		return nil, err
	}
	return share, nil
}

func (s *interactionService) ListInteractions(ctx context.Context, postID primitive.ObjectID, interactionType string) ([]models.Interaction, error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.interactions.ListByPost(ctx, postID, interactionType)
}

func (s *interactionService) LikeStatus(ctx context.Context, identity models.Identity, postID primitive.ObjectID) (*LikeSummary, error) {
	likes, err := s.ListInteractions(ctx, postID, models.InteractionLike)
	if err != nil {
		return nil, err
	}

	summary := &LikeSummary{
		Count:        len(likes),
		Interactions: likes,
	}
	for _, like := range likes {
		if like.UserEmail == identity.Email {
			summary.UserLiked = true
			break
		}
	}
	return summary, nil
}
