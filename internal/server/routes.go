package server

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"github.com/danmuck/minectl/internal/subsystems"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type operateRequest struct {
	Quantity *float64 `json:"quantity"`
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.Appeared).String(),
			"service": s.ID,
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.GET("/subsystems", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"subsystems": s.newMine(&bytes.Buffer{}).Describe(),
		})
	})

	s.router.POST("/operate", func(c *gin.Context) {
		var req operateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Quantity == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
			return
		}

		var buf bytes.Buffer
		s.newMine(&buf).Operate(*req.Quantity)
		c.JSON(http.StatusOK, gin.H{"status": "ok", "lines": splitLines(buf.String())})
	})

	s.router.POST("/subsystems/:id/actions/:action", func(c *gin.Context) {
		args := map[string]string{}
		if q, ok := c.GetQuery("quantity"); ok {
			args["quantity"] = q
		}

		var buf bytes.Buffer
		err := s.newMine(&buf).Execute(c.Param("id"), c.Param("action"), args)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "lines": splitLines(buf.String())})
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, subsystems.ErrUnknownSubsystem), errors.Is(err, subsystems.ErrUnknownAction):
		return http.StatusNotFound
	case errors.Is(err, subsystems.ErrInvalidQuantity):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
