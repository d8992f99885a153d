package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/ukaji3/lunchroulette-go/pkg/roulette/models"
	"github.com/ukaji3/lunchroulette-go/pkg/roulette/selector"
)

// UnavailableMessage tells the front end to disable drawing.
const UnavailableMessage = "drawing is unavailable until the menu workbook loads"

type Handler struct {
	holder   *Holder
	selector *selector.Selector
}

func NewHandler(holder *Holder, sel *selector.Selector) *Handler {
	return &Handler{holder: holder, selector: sel}
}

// DrawRequest carries the caller's current selection for one flow.
type DrawRequest struct {
	Categories []string `json:"categories"`
}

// dataset returns the current dataset or writes a 503 explaining why there is none.
func (h *Handler) dataset(c *gin.Context) *models.Dataset {
	ds := h.holder.Dataset()
	if ds != nil {
		return ds
	}

	reason := "dataset not loaded"
	if err := h.holder.LastError(); err != nil {
		reason = err.Error()
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{
		"error":   reason,
		"message": UnavailableMessage,
	})
	return nil
}

// --------------------------------------------------
// GET /categories
// --------------------------------------------------
func (h *Handler) Categories(c *gin.Context) {
	ds := h.dataset(c)
	if ds == nil {
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": ds.Categories})
}

// --------------------------------------------------
// GET /dataset
// --------------------------------------------------
func (h *Handler) Dataset(c *gin.Context) {
	ds := h.dataset(c)
	if ds == nil {
		return
	}
	c.JSON(http.StatusOK, ds)
}

// --------------------------------------------------
// POST /draw/:kind
// --------------------------------------------------
func (h *Handler) Draw(c *gin.Context) {
	kind, ok := models.ParseKind(c.Param("kind"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown draw kind " + c.Param("kind")})
		return
	}

	var req DrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ds := h.dataset(c)
	if ds == nil {
		return
	}

	result := h.selector.Draw(models.NewSelectionSet(req.Categories...), ds.IndexFor(kind))
	if result.IsSentinel() {
		log.Debug().
			Str("request_id", c.GetString("requestID")).
			Str("kind", string(kind)).
			Str("status", string(result.Status)).
			Msg("draw returned sentinel")
	}
	c.JSON(http.StatusOK, result)
}
