package handlers

import (
	"errors"
	"log"
	"net/http"

	"playlistpulse/repository"
	"playlistpulse/service"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Posts        service.PostService
	Interactions service.InteractionService
}

func New(posts service.PostService, interactions service.InteractionService) *Handlers {
	return &Handlers{Posts: posts, Interactions: interactions}
}

// respondError translates repository/service failures into status codes.
// Anything unanticipated is logged and surfaced as a generic 500 with no
// internal detail.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
	default:
		log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}
