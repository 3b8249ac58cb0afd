package service

import (
	"context"
	"sort"

	"playlistpulse/models"
	"playlistpulse/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repositories mirroring the MongoDB implementations' contracts:
// descending createdAt sort, guarded owner delete, field-addressed counter
// increments.

type fakePostRepo struct {
	posts map[primitive.ObjectID]*models.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[primitive.ObjectID]*models.Post)}
}

func (f *fakePostRepo) List(_ context.Context, user string) ([]models.Post, error) {
	out := []models.Post{}
	for _, p := range f.posts {
		if user != "" && p.User != user {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out, nil
}

func (f *fakePostRepo) Insert(_ context.Context, post *models.Post) error {
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	stored := *post
	f.posts[post.ID] = &stored
	return nil
}

func (f *fakePostRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakePostRepo) DeleteOwned(_ context.Context, id primitive.ObjectID, userEmail string) error {
	p, ok := f.posts[id]
	if !ok || p.UserEmail != userEmail {
		return repository.ErrNotFound
	}
	delete(f.posts, id)
	return nil
}

func (f *fakePostRepo) IncCounter(_ context.Context, id primitive.ObjectID, field string, delta int) error {
	p, ok := f.posts[id]
	if !ok {
		return repository.ErrNotFound
	}
	switch field {
	case "likeCount":
		p.LikeCount += delta
	case "commentCount":
		p.CommentCount += delta
	case "shareCount":
		p.ShareCount += delta
	}
	return nil
}

func (f *fakePostRepo) SetCounters(_ context.Context, id primitive.ObjectID, likes, comments, shares int) error {
	p, ok := f.posts[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.LikeCount = likes
	p.CommentCount = comments
	p.ShareCount = shares
	return nil
}

type fakeInteractionRepo struct {
	interactions []models.Interaction
}

func newFakeInteractionRepo() *fakeInteractionRepo {
	return &fakeInteractionRepo{}
}

func (f *fakeInteractionRepo) FindLike(_ context.Context, postID primitive.ObjectID, userEmail string) (*models.Interaction, error) {
	for _, in := range f.interactions {
		if in.PostID == postID && in.UserEmail == userEmail && in.Type == models.InteractionLike {
			copied := in
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeInteractionRepo) Insert(_ context.Context, interaction *models.Interaction) error {
	if interaction.ID.IsZero() {
		interaction.ID = primitive.NewObjectID()
	}
	f.interactions = append(f.interactions, *interaction)
	return nil
}

func (f *fakeInteractionRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, in := range f.interactions {
		if in.ID == id {
			f.interactions = append(f.interactions[:i], f.interactions[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeInteractionRepo) ListByPost(_ context.Context, postID primitive.ObjectID, interactionType string) ([]models.Interaction, error) {
	out := []models.Interaction{}
	for _, in := range f.interactions {
		if in.PostID != postID {
			continue
		}
		if interactionType != "" && in.Type != interactionType {
			continue
		}
		out = append(out, in)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out, nil
}

func (f *fakeInteractionRepo) CountByPost(_ context.Context, postID primitive.ObjectID, interactionType string) (int64, error) {
	var n int64
	for _, in := range f.interactions {
		if in.PostID == postID && in.Type == interactionType {
			n++
		}
	}
	return n, nil
}
