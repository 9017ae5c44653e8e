package content

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"joyjuncture/internal/logger"
)

type Handler struct {
	repo Repository
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{repo: NewRepository(db)}
}

// ListPosts godoc
// @Summary      List blog posts
// @Description  Returns all blog posts, newest first.
// @Tags         content
// @Produce      json
// @Success      200  {array}   BlogPost
// @Failure      500  {object}  api.ErrorResponse
// @Router       /blog [get]
func (h *Handler) ListPosts(c *gin.Context) {
	posts, err := h.repo.List(c.Request.Context())
	if err != nil {
		logger.Errorf("Failed to list blog posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load blog posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}
