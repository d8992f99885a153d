package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ukaji3/lunchroulette-go/pkg/roulette/selector"
)

// NewRouter wires the API routes around holder and sel.
func NewRouter(holder *Holder, sel *selector.Selector, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), AccessLog())

	if len(corsOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  corsOrigins,
			AllowMethods:  []string{"GET", "POST"},
			AllowHeaders:  []string{"Origin", "Content-Type", RequestIDHeader},
			ExposeHeaders: []string{RequestIDHeader},
			MaxAge:        12 * time.Hour,
		}))
	}

	h := NewHandler(holder, sel)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/categories", h.Categories)
	r.GET("/dataset", h.Dataset)
	r.POST("/draw/:kind", h.Draw)

	return r
}
