package handlers

import (
	"context"
	"net/http"
	"time"

	"playlistpulse/middleware"
	"playlistpulse/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateInteractionRequest struct {
	PostID  string `json:"postId" binding:"required"`
	Type    string `json:"type" binding:"required"`
	Content string `json:"content"`
}

func (h *Handlers) GetInteractions(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	postIDStr := c.Query("postId")
	if postIDStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "postId is required"})
		return
	}
	postID, err := primitive.ObjectIDFromHex(postIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid postId"})
		return
	}

	interactionType := c.Query("type")
	if interactionType != "" && !models.ValidInteractionType(interactionType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid interaction type"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Like queries get the count-plus-flag shape; everything else is the
	// raw list.
	if interactionType == models.InteractionLike {
		summary, err := h.Interactions.LikeStatus(ctx, identity, postID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, summary)
		return
	}

	interactions, err := h.Interactions.ListInteractions(ctx, postID, interactionType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, interactions)
}

func (h *Handlers) CreateInteraction(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req CreateInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	postID, err := primitive.ObjectIDFromHex(req.PostID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid postId"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch req.Type {
	case models.InteractionLike:
		result, err := h.Interactions.ToggleLike(ctx, identity, postID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, result)

	case models.InteractionComment:
		comment, err := h.Interactions.AddComment(ctx, identity, postID, req.Content)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, comment)

	case models.InteractionShare:
		share, err := h.Interactions.AddShare(ctx, identity, postID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, share)

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid interaction type"})
	}
}
