package service

import (
	"context"
	"log"
	"time"

	"playlistpulse/models"
	"playlistpulse/repository"
)

// Reconciler realigns the denormalized post counters with the interaction
// log. Counter updates and interaction writes are not transactional, so a
// crash between the two leaves a counter behind the true count; the log is
// authoritative and the counters are a read optimization. The reconciler
// cannot detect duplicate like documents, it only recounts.
type Reconciler struct {
	posts        repository.PostRepository
	interactions repository.InteractionRepository
}

func NewReconciler(posts repository.PostRepository, interactions repository.InteractionRepository) *Reconciler {
	return &Reconciler{posts: posts, interactions: interactions}
}

// Run recounts on every tick until ctx is cancelled.
func (r *Reconciler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			corrected, err := r.ReconcileOnce(ctx)
			if err != nil {
				log.Printf("Counter reconcile failed: %v", err)
				continue
			}
			if corrected > 0 {
				log.Printf("Counter reconcile corrected %d post(s)", corrected)
			}
		}
	}
}

// ReconcileOnce recounts interactions for every post and rewrites any
// counters that drifted. Returns the number of posts corrected.
func (r *Reconciler) ReconcileOnce(ctx context.Context) (int, error) {
	posts, err := r.posts.List(ctx, "")
	if err != nil {
		return 0, err
	}

	corrected := 0
	for _, post := range posts {
		likes, err := r.interactions.CountByPost(ctx, post.ID, models.InteractionLike)
		if err != nil {
			return corrected, err
		}
		comments, err := r.interactions.CountByPost(ctx, post.ID, models.InteractionComment)
		if err != nil {
			return corrected, err
		}
		shares, err := r.interactions.CountByPost(ctx, post.ID, models.InteractionShare)
		if err != nil {
			return corrected, err
		}

		if int(likes) == post.LikeCount && int(comments) == post.CommentCount && int(shares) == post.ShareCount {
			continue
		}

		if err := r.posts.SetCounters(ctx, post.ID, int(likes), int(comments), int(shares)); err != nil {
			return corrected, err
		}
		log.Printf("Reconciled counters for post %s: likes %d->%d comments %d->%d shares %d->%d",
			post.ID.Hex(), post.LikeCount, likes, post.CommentCount, comments, post.ShareCount, shares)
		corrected++
	}
	return corrected, nil
}
