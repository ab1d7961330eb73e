package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"goods/internal/repositories"

	"github.com/gin-gonic/gin"
)

// SystemHandler exposes liveness and introspection endpoints.
type SystemHandler struct {
	DB     *sql.DB
	Router *gin.Engine
}

func (h SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "goods service running"})
}

func (h SystemHandler) DBCheck(c *gin.Context) {
	if h.DB == nil {
		respondError(c, http.StatusInternalServerError, "db_unavailable", "database not connected")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	count, err := repositories.GoodsRepository{DB: h.DB}.Count(ctx)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "db_unavailable", "database query failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "goods_in_db": count})
}

func (h SystemHandler) Routes(c *gin.Context) {
	if h.Router == nil {
		respondError(c, http.StatusServiceUnavailable, "router_not_ready", "router not ready")
		return
	}

	routes := h.Router.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
