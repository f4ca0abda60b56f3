package handlers

import (
	"net/http"
	"strconv"

	"training-portal/internal/pages"

	"github.com/gin-gonic/gin"
)

// ShowTerms renders one flashcard; ?card=N is one-based and clamped.
func (h *Handler) ShowTerms(p pages.Page) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := strconv.Atoi(c.DefaultQuery("card", "1"))
		if err != nil {
			n = 1
		}
		render(c, http.StatusOK, p.File, gin.H{
			"page":  p,
			"terms": h.deck.At(n - 1),
		})
	}
}
